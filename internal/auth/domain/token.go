// Package domain defines authentication domain types shared by the token
// service, the HTTP layer and API consumers.
package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/errors"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

// TokenType distinguishes short-lived access tokens from the longer-lived
// refresh tokens used only to mint new access tokens.
type TokenType string

const (
	// AccessToken authorizes API calls.
	AccessToken TokenType = "access"
	// RefreshToken is exchanged for a new access token.
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the JWT claim set carried by both access and refresh tokens.
// Role and Username ride on both tokens so a refreshed access token can be
// minted without a database lookup.
type TokenClaims struct {
	Role      userDomain.Role `json:"role"`
	Username  string          `json:"username"`
	TokenType TokenType       `json:"token_type"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID.
func (c *TokenClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(ErrInvalidToken, "invalid subject claim")
	}
	return id, nil
}

// Expired reports whether the token expiry is in the past at the given time.
func (c *TokenClaims) Expired(now time.Time) bool {
	return c.ExpiresAt == nil || now.After(c.ExpiresAt.Time)
}

// TokenPair is the credential pair returned by a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}

// Domain-specific errors for authentication operations.
var (
	// ErrInvalidCredentials indicates the username/password pair is wrong.
	// Deliberately indistinguishable from an unknown username.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidToken indicates the token failed signature or claim validation.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrWrongTokenType indicates an access token was presented where a
	// refresh token was expected, or vice versa.
	ErrWrongTokenType = errors.Wrap(errors.ErrUnauthorized, "wrong token type")
)
