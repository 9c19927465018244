package domain

import (
	"github.com/ativoshub/ativos/internal/errors"
)

// Inventory-specific error definitions.
var (
	// ErrCategoryNotFound indicates the category does not exist.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")
	// ErrCategoryAlreadyExists indicates a category with the same name exists.
	ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")
	// ErrFieldDefinitionNotFound indicates the field definition does not exist.
	ErrFieldDefinitionNotFound = errors.Wrap(errors.ErrNotFound, "field definition not found")
	// ErrInvalidFieldType indicates an unsupported field type.
	ErrInvalidFieldType = errors.Wrap(errors.ErrInvalidInput, "invalid field type")
	// ErrAssetNotFound indicates the asset does not exist.
	ErrAssetNotFound = errors.Wrap(errors.ErrNotFound, "asset not found")
	// ErrPatrimonioAlreadyExists indicates an asset with the same patrimony
	// number exists.
	ErrPatrimonioAlreadyExists = errors.Wrap(errors.ErrConflict, "patrimonio already exists")
	// ErrInvalidStatus indicates an unsupported asset status.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid status")
	// ErrCategoryImmutable indicates an attempt to move an asset to another
	// category after creation.
	ErrCategoryImmutable = errors.Wrap(errors.ErrInvalidInput, "asset category cannot be changed")
	// ErrFieldNotInCategory indicates a field value referencing a definition
	// outside the asset's category.
	ErrFieldNotInCategory = errors.Wrap(errors.ErrInvalidInput, "field definition does not belong to the asset category")
	// ErrDuplicateFieldValue indicates multiple values for the same field
	// definition in one request.
	ErrDuplicateFieldValue = errors.Wrap(errors.ErrInvalidInput, "duplicate field definition in field values")
)
