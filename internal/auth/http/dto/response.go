// Package dto provides data transfer objects for HTTP request and response handling.
package dto

// TokenPairResponse contains the access and refresh tokens returned on login.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AccessTokenResponse contains the access token returned by a refresh.
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// SecretQuestionResponse contains the secret question configured for a username.
type SecretQuestionResponse struct {
	SecretQuestion string `json:"secret_question"`
}
