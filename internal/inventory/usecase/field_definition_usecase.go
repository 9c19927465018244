package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/inventory/domain"
	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// FieldDefinitionUseCaseImpl handles field definition business logic
type FieldDefinitionUseCaseImpl struct {
	categoryRepo CategoryRepository
	fieldDefRepo FieldDefinitionRepository
}

// NewFieldDefinitionUseCase creates a new FieldDefinitionUseCaseImpl
func NewFieldDefinitionUseCase(categoryRepo CategoryRepository, fieldDefRepo FieldDefinitionRepository) FieldDefinitionUseCase {
	return &FieldDefinitionUseCaseImpl{
		categoryRepo: categoryRepo,
		fieldDefRepo: fieldDefRepo,
	}
}

// validateFieldDefinitionInput validates the field definition input
func validateFieldDefinitionInput(input FieldDefinitionInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("name must be between 1 and 100 characters"),
		),
		validation.Field(&input.FieldType,
			validation.Required.Error("field type is required"),
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if !domain.FieldType(input.FieldType).Valid() {
		return domain.ErrInvalidFieldType
	}
	return nil
}

// CreateFieldDefinition appends a new field definition to the category's
// schema. The position is assigned after the existing fields so declaration
// order is preserved.
func (uc *FieldDefinitionUseCaseImpl) CreateFieldDefinition(ctx context.Context, categoryID uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error) {
	if err := validateFieldDefinitionInput(input); err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	position, err := uc.fieldDefRepo.NextPosition(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	fieldDef := &domain.FieldDefinition{
		ID:         uuid.Must(uuid.NewV7()),
		CategoryID: categoryID,
		Name:       strings.TrimSpace(input.Name),
		FieldType:  domain.FieldType(input.FieldType),
		Position:   position,
	}

	if err := uc.fieldDefRepo.Create(ctx, fieldDef); err != nil {
		return nil, err
	}

	return fieldDef, nil
}

// GetFieldDefinition retrieves a field definition by ID
func (uc *FieldDefinitionUseCaseImpl) GetFieldDefinition(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	return uc.fieldDefRepo.GetByID(ctx, id)
}

// ListFieldDefinitions retrieves the field definitions of a category in
// declaration order
func (uc *FieldDefinitionUseCaseImpl) ListFieldDefinitions(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return uc.fieldDefRepo.ListByCategory(ctx, categoryID)
}

// UpdateFieldDefinition modifies the name and field type of a field
// definition. The position never changes on update.
func (uc *FieldDefinitionUseCaseImpl) UpdateFieldDefinition(ctx context.Context, id uuid.UUID, input FieldDefinitionInput) (*domain.FieldDefinition, error) {
	if err := validateFieldDefinitionInput(input); err != nil {
		return nil, err
	}

	fieldDef, err := uc.fieldDefRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fieldDef.Name = strings.TrimSpace(input.Name)
	fieldDef.FieldType = domain.FieldType(input.FieldType)

	if err := uc.fieldDefRepo.Update(ctx, fieldDef); err != nil {
		return nil, err
	}

	return fieldDef, nil
}

// DeleteFieldDefinition removes a field definition with the asset values
// stored for it
func (uc *FieldDefinitionUseCaseImpl) DeleteFieldDefinition(ctx context.Context, id uuid.UUID) error {
	return uc.fieldDefRepo.Delete(ctx, id)
}
