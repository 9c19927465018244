package dto

import (
	"time"

	"github.com/google/uuid"
)

// FieldDefinitionResponse represents a field definition in API responses
type FieldDefinitionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	FieldType string    `json:"field_type"`
}

// CategoryResponse represents a category in API responses. FieldDefinitions
// is present on detail reads and carries the schema in declaration order.
type CategoryResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Name             string                    `json:"name"`
	FieldDefinitions []FieldDefinitionResponse `json:"field_definitions,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// ListCategoriesResponse wraps a page of categories
type ListCategoriesResponse struct {
	Data []CategoryResponse `json:"data"`
}

// ListFieldDefinitionsResponse wraps a category's field definitions
type ListFieldDefinitionsResponse struct {
	Data []FieldDefinitionResponse `json:"data"`
}

// AssetFieldValueResponse is one (field definition, value) pair of an asset
type AssetFieldValueResponse struct {
	FieldDefinition uuid.UUID `json:"field_definition"`
	Value           string    `json:"value"`
}

// AssetResponse represents an asset in API responses
type AssetResponse struct {
	ID          uuid.UUID                 `json:"id"`
	Patrimonio  string                    `json:"patrimonio"`
	Category    uuid.UUID                 `json:"category"`
	Status      string                    `json:"status"`
	FieldValues []AssetFieldValueResponse `json:"field_values"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

// ListAssetsResponse wraps a page of assets
type ListAssetsResponse struct {
	Data []AssetResponse `json:"data"`
}
