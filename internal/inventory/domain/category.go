// Package domain defines the core domain models for the asset inventory:
// categories, the field definitions that describe each category's custom
// attribute schema, and the assets that carry values for those attributes.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// FieldType enumerates the kinds of values a custom field can hold.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeDate   FieldType = "date"
)

// Valid reports whether the field type is one of the supported kinds.
func (f FieldType) Valid() bool {
	switch f {
	case FieldTypeText, FieldTypeNumber, FieldTypeDate:
		return true
	}
	return false
}

// Category groups assets that share the same custom attribute schema.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// FieldDefinitions is the category's attribute schema in declaration
	// order. Populated on detail reads, nil on list reads.
	FieldDefinitions []*FieldDefinition
}

// FieldDefinition describes one custom attribute of a category.
// Position records declaration order, which is the rendering order.
type FieldDefinition struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	FieldType  FieldType
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
