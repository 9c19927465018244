package usecase

import (
	"context"

	"github.com/allisson/go-pwdhash"
	validation "github.com/jellydator/validation"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	authService "github.com/ativoshub/ativos/internal/auth/service"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	userDomain "github.com/ativoshub/ativos/internal/user/domain"
	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// authUseCase handles login, token refresh and secret-question password reset.
type authUseCase struct {
	userRepo     UserRepository
	tokenService authService.TokenService
	hasher       *pwdhash.PasswordHasher
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	userRepo UserRepository,
	tokenService authService.TokenService,
) (AuthUseCase, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &authUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
		hasher:       hasher,
	}, nil
}

// Login verifies the credentials and mints an access/refresh token pair.
// Unknown usernames and wrong passwords produce the same error so the
// endpoint does not leak which usernames exist.
func (uc *authUseCase) Login(ctx context.Context, input LoginInput) (*authDomain.TokenPair, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username, validation.Required, appValidation.NotBlank),
		validation.Field(&input.Password, validation.Required),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	user, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if apperrors.Is(err, userDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := uc.hasher.Verify([]byte(input.Password), user.Password)
	if err != nil || !ok {
		return nil, authDomain.ErrInvalidCredentials
	}

	access, _, err := uc.tokenService.Issue(user, authDomain.AccessToken)
	if err != nil {
		return nil, err
	}

	refresh, _, err := uc.tokenService.Issue(user, authDomain.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &authDomain.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh verifies a refresh token and mints a new access token carrying the
// same identity claims. The refresh token itself is never rotated here.
func (uc *authUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.tokenService.Verify(refreshToken, authDomain.RefreshToken)
	if err != nil {
		return "", err
	}

	access, _, err := uc.tokenService.IssueFromClaims(claims)
	if err != nil {
		return "", err
	}

	return access, nil
}

// GetSecretQuestion returns the secret question configured for a username.
func (uc *authUseCase) GetSecretQuestion(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", appValidation.WrapValidationError(apperrors.New("username is required"))
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if user.SecretQuestion == "" {
		return "", userDomain.ErrSecretQuestionNotSet
	}

	return user.SecretQuestion, nil
}

// ResetPassword sets a new password after verifying the secret answer.
func (uc *authUseCase) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username, validation.Required, appValidation.NotBlank),
		validation.Field(&input.SecretAnswer, validation.Required),
		validation.Field(&input.NewPassword,
			validation.Required,
			validation.Length(8, 128),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	user, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	if user.SecretAnswer == "" {
		return userDomain.ErrSecretQuestionNotSet
	}

	ok, err := uc.hasher.Verify([]byte(userDomain.NormalizeSecretAnswer(input.SecretAnswer)), user.SecretAnswer)
	if err != nil || !ok {
		return userDomain.ErrSecretAnswerMismatch
	}

	passwordHash, err := uc.hasher.Hash([]byte(input.NewPassword))
	if err != nil {
		return apperrors.Wrap(err, "failed to hash password")
	}

	return uc.userRepo.UpdatePassword(ctx, input.Username, passwordHash)
}
