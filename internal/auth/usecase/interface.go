// Package usecase implements authentication business logic.
package usecase

import (
	"context"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

// LoginInput contains the credentials for a login attempt.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ResetPasswordInput contains the data for a secret-question password reset.
type ResetPasswordInput struct {
	Username     string `json:"username"`
	SecretAnswer string `json:"secret_answer"`
	NewPassword  string `json:"new_password"`
}

// AuthUseCase defines the authentication business logic operations.
type AuthUseCase interface {
	// Login verifies the credentials and mints an access/refresh token pair.
	Login(ctx context.Context, input LoginInput) (*authDomain.TokenPair, error)

	// Refresh verifies a refresh token and mints a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// GetSecretQuestion returns the secret question configured for a username.
	GetSecretQuestion(ctx context.Context, username string) (string, error)

	// ResetPassword sets a new password after verifying the secret answer.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}

// UserRepository defines the user persistence operations the auth module needs.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*userDomain.User, error)
	UpdatePassword(ctx context.Context, username string, passwordHash string) error
}
