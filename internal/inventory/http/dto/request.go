// Package dto contains HTTP request and response types for the inventory
// endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// CategoryRequest represents a category create or update request
type CategoryRequest struct {
	Name string `json:"name"`
}

// Validate validates the category request
func (r CategoryRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// FieldDefinitionRequest represents a field definition create or update request
type FieldDefinitionRequest struct {
	Name      string `json:"name"`
	FieldType string `json:"field_type"`
}

// Validate validates the field definition request
func (r FieldDefinitionRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.FieldType,
			validation.Required.Error("field_type is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// AssetFieldValueRequest is one (field definition, value) pair of an asset
// request
type AssetFieldValueRequest struct {
	FieldDefinition uuid.UUID `json:"field_definition"`
	Value           string    `json:"value"`
}

// CreateAssetRequest represents an asset creation request
type CreateAssetRequest struct {
	Patrimonio  string                   `json:"patrimonio"`
	Category    uuid.UUID                `json:"category"`
	Status      string                   `json:"status"`
	FieldValues []AssetFieldValueRequest `json:"field_values"`
}

// Validate validates the asset creation request
func (r CreateAssetRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Patrimonio,
			validation.Required.Error("patrimonio is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateAssetRequest represents an asset update request. An omitted
// field_values list keeps the stored values.
type UpdateAssetRequest struct {
	Patrimonio  string                   `json:"patrimonio"`
	Status      string                   `json:"status"`
	FieldValues []AssetFieldValueRequest `json:"field_values"`
}

// Validate validates the asset update request
func (r UpdateAssetRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Patrimonio,
			validation.Required.Error("patrimonio is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}
