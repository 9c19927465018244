// Package mocks provides mock implementations for testing authentication use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	userDomain "github.com/ativoshub/ativos/internal/user/domain"
)

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// GetByUsername mocks the GetByUsername method of UserRepository.
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

// UpdatePassword mocks the UpdatePassword method of UserRepository.
func (m *MockUserRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}
