package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// CategoryUseCaseImpl handles category-related business logic
type CategoryUseCaseImpl struct {
	categoryRepo CategoryRepository
	fieldDefRepo FieldDefinitionRepository
}

// NewCategoryUseCase creates a new CategoryUseCaseImpl
func NewCategoryUseCase(categoryRepo CategoryRepository, fieldDefRepo FieldDefinitionRepository) CategoryUseCase {
	return &CategoryUseCaseImpl{
		categoryRepo: categoryRepo,
		fieldDefRepo: fieldDefRepo,
	}
}

// validateCategoryInput validates the category input using jellydator/validation
func validateCategoryInput(input CategoryInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateCategory creates a new category
func (uc *CategoryUseCaseImpl) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:   uuid.Must(uuid.NewV7()),
		Name: strings.TrimSpace(input.Name),
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	category.FieldDefinitions = make([]*domain.FieldDefinition, 0)

	return category, nil
}

// GetCategory retrieves a category by ID with its field definitions in
// declaration order
func (uc *CategoryUseCaseImpl) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fieldDefs, err := uc.fieldDefRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.FieldDefinitions = fieldDefs

	return category, nil
}

// ListCategories retrieves categories with offset/limit pagination
func (uc *CategoryUseCaseImpl) ListCategories(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, offset, limit)
}

// UpdateCategory modifies the name of a category
func (uc *CategoryUseCaseImpl) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error) {
	if err := validateCategoryInput(input); err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	fieldDefs, err := uc.fieldDefRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	category.FieldDefinitions = fieldDefs

	return category, nil
}

// DeleteCategory removes a category with its field definitions and assets
func (uc *CategoryUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return uc.categoryRepo.Delete(ctx, id)
}
