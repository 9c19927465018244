// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ativoshub/ativos/internal/user/domain"
	"github.com/ativoshub/ativos/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of the user UseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// RegisterUser mocks the RegisterUser method of UseCase.
func (m *MockUserUseCase) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetUserByID mocks the GetUserByID method of UseCase.
func (m *MockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// ListUsers mocks the ListUsers method of UseCase.
func (m *MockUserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// UpdateUser mocks the UpdateUser method of UseCase.
func (m *MockUserUseCase) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	input usecase.UpdateUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// UpdateUserRole mocks the UpdateUserRole method of UseCase.
func (m *MockUserUseCase) UpdateUserRole(ctx context.Context, callerID, targetID uuid.UUID, role domain.Role) error {
	args := m.Called(ctx, callerID, targetID, role)
	return args.Error(0)
}

// DeleteUser mocks the DeleteUser method of UseCase.
func (m *MockUserUseCase) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	args := m.Called(ctx, callerID, targetID)
	return args.Error(0)
}
