// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	"github.com/ativoshub/ativos/internal/inventory/usecase"
)

// MockCategoryUseCase is a mock implementation of usecase.CategoryUseCase
type MockCategoryUseCase struct {
	mock.Mock
}

func (m *MockCategoryUseCase) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFieldDefinitionUseCase is a mock implementation of usecase.FieldDefinitionUseCase
type MockFieldDefinitionUseCase struct {
	mock.Mock
}

func (m *MockFieldDefinitionUseCase) CreateFieldDefinition(ctx context.Context, categoryID uuid.UUID, input usecase.FieldDefinitionInput) (*domain.FieldDefinition, error) {
	args := m.Called(ctx, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionUseCase) GetFieldDefinition(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionUseCase) ListFieldDefinitions(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionUseCase) UpdateFieldDefinition(ctx context.Context, id uuid.UUID, input usecase.FieldDefinitionInput) (*domain.FieldDefinition, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionUseCase) DeleteFieldDefinition(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssetUseCase is a mock implementation of usecase.AssetUseCase
type MockAssetUseCase struct {
	mock.Mock
}

func (m *MockAssetUseCase) CreateAsset(ctx context.Context, input usecase.CreateAssetInput) (*domain.Asset, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetUseCase) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetUseCase) ListAssets(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	args := m.Called(ctx, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetUseCase) UpdateAsset(ctx context.Context, id uuid.UUID, input usecase.UpdateAssetInput) (*domain.Asset, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetUseCase) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
