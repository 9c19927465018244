// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/ativoshub/ativos/internal/validation"
)

// ObtainPairRequest contains the credentials for obtaining a token pair.
type ObtainPairRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks if the obtain pair request is valid.
func (r *ObtainPairRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}

// RefreshRequest contains the refresh token used to mint a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// Validate checks if the refresh request is valid.
func (r *RefreshRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Refresh,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// SecretQuestionRequest contains the username whose secret question is requested.
type SecretQuestionRequest struct {
	Username string `json:"username"`
}

// Validate checks if the secret question request is valid.
func (r *SecretQuestionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// ResetPasswordRequest contains the parameters for a secret-question password reset.
type ResetPasswordRequest struct {
	Username     string `json:"username"`
	SecretAnswer string `json:"secret_answer"`
	NewPassword  string `json:"new_password"`
}

// Validate checks if the reset password request is valid.
func (r *ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.SecretAnswer,
			validation.Required,
		),
		validation.Field(&r.NewPassword,
			validation.Required,
		),
	)
}
