package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status enumerates the lifecycle states of an asset.
type Status string

const (
	StatusDisponivel Status = "disponivel"
	StatusEmUso      Status = "em_uso"
	StatusManutencao Status = "manutencao"
	StatusInativo    Status = "inativo"
)

// Valid reports whether the status is one of the supported states.
func (s Status) Valid() bool {
	switch s {
	case StatusDisponivel, StatusEmUso, StatusManutencao, StatusInativo:
		return true
	}
	return false
}

// Asset is a tracked inventory item. The category is fixed at creation
// and defines which custom field values the asset may carry.
type Asset struct {
	ID         uuid.UUID
	Patrimonio string
	CategoryID uuid.UUID
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// FieldValues holds the asset's custom attribute values. At most one
	// entry per field definition.
	FieldValues []*AssetFieldValue
}

// AssetFieldValue is the value an asset holds for one field definition.
type AssetFieldValue struct {
	FieldDefinitionID uuid.UUID
	Value             string
}
