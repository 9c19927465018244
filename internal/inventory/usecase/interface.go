// Package usecase implements the inventory business logic for categories,
// field definitions and assets.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	outboxDomain "github.com/ativoshub/ativos/internal/outbox/domain"
)

// CategoryInput contains the input data for creating or updating a category
type CategoryInput struct {
	Name string `json:"name"`
}

// FieldDefinitionInput contains the input data for creating or updating a
// field definition
type FieldDefinitionInput struct {
	Name      string `json:"name"`
	FieldType string `json:"field_type"`
}

// AssetFieldValueInput is one (field definition, value) pair of an asset
type AssetFieldValueInput struct {
	FieldDefinition uuid.UUID `json:"field_definition"`
	Value           string    `json:"value"`
}

// CreateAssetInput contains the input data for asset creation
type CreateAssetInput struct {
	Patrimonio  string                 `json:"patrimonio"`
	CategoryID  uuid.UUID              `json:"category"`
	Status      string                 `json:"status"`
	FieldValues []AssetFieldValueInput `json:"field_values"`
}

// UpdateAssetInput contains the input data for asset updates. A nil
// FieldValues keeps the stored values; a non-nil slice, empty included,
// replaces the whole set.
type UpdateAssetInput struct {
	Patrimonio  string                 `json:"patrimonio"`
	Status      string                 `json:"status"`
	FieldValues []AssetFieldValueInput `json:"field_values"`
}

// CategoryUseCase defines the interface for category business logic operations
type CategoryUseCase interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// FieldDefinitionUseCase defines the interface for field definition business
// logic operations
type FieldDefinitionUseCase interface {
	CreateFieldDefinition(ctx context.Context, categoryID uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error)
	GetFieldDefinition(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	ListFieldDefinitions(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error)
	UpdateFieldDefinition(ctx context.Context, id uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error)
	DeleteFieldDefinition(ctx context.Context, id uuid.UUID) error
}

// AssetUseCase defines the interface for asset business logic operations
type AssetUseCase interface {
	CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListAssets(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error)
	UpdateAsset(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*domain.Asset, error)
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository interface defines category repository operations
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FieldDefinitionRepository interface defines field definition repository operations
type FieldDefinitionRepository interface {
	Create(ctx context.Context, fieldDef *domain.FieldDefinition) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error)
	NextPosition(ctx context.Context, categoryID uuid.UUID) (int, error)
	Update(ctx context.Context, fieldDef *domain.FieldDefinition) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssetRepository interface defines asset repository operations
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	ReplaceFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OutboxEventRepository interface defines outbox event repository operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}
