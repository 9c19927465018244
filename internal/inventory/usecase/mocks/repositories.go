// Package mocks provides mock implementations of the inventory repository
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	outboxDomain "github.com/ativoshub/ativos/internal/outbox/domain"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFieldDefinitionRepository is a mock implementation of FieldDefinitionRepository
type MockFieldDefinitionRepository struct {
	mock.Mock
}

func (m *MockFieldDefinitionRepository) Create(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	args := m.Called(ctx, fieldDef)
	return args.Error(0)
}

func (m *MockFieldDefinitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FieldDefinition), args.Error(1)
}

func (m *MockFieldDefinitionRepository) NextPosition(ctx context.Context, categoryID uuid.UUID) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockFieldDefinitionRepository) Update(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	args := m.Called(ctx, fieldDef)
	return args.Error(0)
}

func (m *MockFieldDefinitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssetRepository is a mock implementation of AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	args := m.Called(ctx, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Asset), args.Error(1)
}

func (m *MockAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) ReplaceFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error {
	args := m.Called(ctx, assetID, values)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository
type MockOutboxEventRepository struct {
	mock.Mock
}

func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
