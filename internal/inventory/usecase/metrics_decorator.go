package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	"github.com/ativoshub/ativos/internal/metrics"
)

// record reports one inventory operation to the business metrics
func record(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.RecordOperation(ctx, "inventory", operation, status)
	m.RecordDuration(ctx, "inventory", operation, time.Since(start), status)
}

// categoryUseCaseWithMetrics decorates CategoryUseCase with metrics instrumentation.
type categoryUseCaseWithMetrics struct {
	next    CategoryUseCase
	metrics metrics.BusinessMetrics
}

// NewCategoryUseCaseWithMetrics wraps a CategoryUseCase with metrics recording.
func NewCategoryUseCaseWithMetrics(useCase CategoryUseCase, m metrics.BusinessMetrics) CategoryUseCase {
	return &categoryUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *categoryUseCaseWithMetrics) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.CreateCategory(ctx, input)
	record(ctx, c.metrics, "category_create", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.GetCategory(ctx, id)
	record(ctx, c.metrics, "category_get", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	start := time.Now()
	categories, err := c.next.ListCategories(ctx, offset, limit)
	record(ctx, c.metrics, "category_list", start, err)
	return categories, err
}

func (c *categoryUseCaseWithMetrics) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error) {
	start := time.Now()
	category, err := c.next.UpdateCategory(ctx, id, input)
	record(ctx, c.metrics, "category_update", start, err)
	return category, err
}

func (c *categoryUseCaseWithMetrics) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := c.next.DeleteCategory(ctx, id)
	record(ctx, c.metrics, "category_delete", start, err)
	return err
}

// fieldDefinitionUseCaseWithMetrics decorates FieldDefinitionUseCase with
// metrics instrumentation.
type fieldDefinitionUseCaseWithMetrics struct {
	next    FieldDefinitionUseCase
	metrics metrics.BusinessMetrics
}

// NewFieldDefinitionUseCaseWithMetrics wraps a FieldDefinitionUseCase with
// metrics recording.
func NewFieldDefinitionUseCaseWithMetrics(useCase FieldDefinitionUseCase, m metrics.BusinessMetrics) FieldDefinitionUseCase {
	return &fieldDefinitionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (f *fieldDefinitionUseCaseWithMetrics) CreateFieldDefinition(ctx context.Context, categoryID uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error) {
	start := time.Now()
	fieldDef, err := f.next.CreateFieldDefinition(ctx, categoryID, input)
	record(ctx, f.metrics, "field_create", start, err)
	return fieldDef, err
}

func (f *fieldDefinitionUseCaseWithMetrics) GetFieldDefinition(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	start := time.Now()
	fieldDef, err := f.next.GetFieldDefinition(ctx, id)
	record(ctx, f.metrics, "field_get", start, err)
	return fieldDef, err
}

func (f *fieldDefinitionUseCaseWithMetrics) ListFieldDefinitions(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	start := time.Now()
	fieldDefs, err := f.next.ListFieldDefinitions(ctx, categoryID)
	record(ctx, f.metrics, "field_list", start, err)
	return fieldDefs, err
}

func (f *fieldDefinitionUseCaseWithMetrics) UpdateFieldDefinition(ctx context.Context, id uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error) {
	start := time.Now()
	fieldDef, err := f.next.UpdateFieldDefinition(ctx, id, input)
	record(ctx, f.metrics, "field_update", start, err)
	return fieldDef, err
}

func (f *fieldDefinitionUseCaseWithMetrics) DeleteFieldDefinition(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := f.next.DeleteFieldDefinition(ctx, id)
	record(ctx, f.metrics, "field_delete", start, err)
	return err
}

// assetUseCaseWithMetrics decorates AssetUseCase with metrics instrumentation.
type assetUseCaseWithMetrics struct {
	next    AssetUseCase
	metrics metrics.BusinessMetrics
}

// NewAssetUseCaseWithMetrics wraps an AssetUseCase with metrics recording.
func NewAssetUseCaseWithMetrics(useCase AssetUseCase, m metrics.BusinessMetrics) AssetUseCase {
	return &assetUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *assetUseCaseWithMetrics) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	start := time.Now()
	asset, err := a.next.CreateAsset(ctx, input)
	record(ctx, a.metrics, "asset_create", start, err)
	return asset, err
}

func (a *assetUseCaseWithMetrics) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	start := time.Now()
	asset, err := a.next.GetAsset(ctx, id)
	record(ctx, a.metrics, "asset_get", start, err)
	return asset, err
}

func (a *assetUseCaseWithMetrics) ListAssets(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	start := time.Now()
	assets, err := a.next.ListAssets(ctx, categoryID, offset, limit)
	record(ctx, a.metrics, "asset_list", start, err)
	return assets, err
}

func (a *assetUseCaseWithMetrics) UpdateAsset(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*domain.Asset, error) {
	start := time.Now()
	asset, err := a.next.UpdateAsset(ctx, id, input)
	record(ctx, a.metrics, "asset_update", start, err)
	return asset, err
}

func (a *assetUseCaseWithMetrics) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := a.next.DeleteAsset(ctx, id)
	record(ctx, a.metrics, "asset_delete", start, err)
	return err
}
