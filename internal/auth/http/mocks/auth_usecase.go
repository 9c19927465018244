// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	"github.com/ativoshub/ativos/internal/auth/usecase"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Login mocks the Login method of AuthUseCase.
func (m *MockAuthUseCase) Login(ctx context.Context, input usecase.LoginInput) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

// Refresh mocks the Refresh method of AuthUseCase.
func (m *MockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// GetSecretQuestion mocks the GetSecretQuestion method of AuthUseCase.
func (m *MockAuthUseCase) GetSecretQuestion(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

// ResetPassword mocks the ResetPassword method of AuthUseCase.
func (m *MockAuthUseCase) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
