// Package schema implements the attribute schema engine shared by the API
// client and by server-side rendering concerns. A schema is the ordered list
// of a category's field definitions; Hydrate and Serialize convert between
// an asset's stored field values and the total keyed form a renderer edits.
// All functions are pure.
package schema

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/inventory/domain"
)

// Schema is a category's field definitions in declaration order.
// Declaration order is the rendering contract for tables and forms.
type Schema []*domain.FieldDefinition

// Hydrate builds a total form map from an asset's field values. The result
// has exactly one entry per definition in the schema: present values keep
// their stored value, missing ones default to the empty string. Values whose
// definition id is not in the schema never appear in the result.
func Hydrate(values []*domain.AssetFieldValue, s Schema) map[uuid.UUID]string {
	byID := make(map[uuid.UUID]string, len(values))
	for _, v := range values {
		byID[v.FieldDefinitionID] = v.Value
	}

	form := make(map[uuid.UUID]string, len(s))
	for _, def := range s {
		form[def.ID] = byID[def.ID]
	}
	return form
}

// Serialize converts a form map back into field values ordered by the
// schema. Keys outside the schema are silently dropped, and the result
// carries at most one value per definition id. Values are passed through
// as-is; any type coercion is the server's concern.
func Serialize(form map[uuid.UUID]string, s Schema) []*domain.AssetFieldValue {
	values := make([]*domain.AssetFieldValue, 0, len(s))
	seen := make(map[uuid.UUID]bool, len(s))
	for _, def := range s {
		if seen[def.ID] {
			continue
		}
		seen[def.ID] = true

		value, ok := form[def.ID]
		if !ok {
			continue
		}
		values = append(values, &domain.AssetFieldValue{
			FieldDefinitionID: def.ID,
			Value:             value,
		})
	}
	return values
}

// Badge is the presentation of an asset status: a human-readable label and
// a CSS class for styling.
type Badge struct {
	Label string
	Class string
}

// Badge CSS classes.
const (
	ClassActive      = "status-active"
	ClassInUse       = "status-in-use"
	ClassMaintenance = "status-maintenance"
	ClassInactive    = "status-inactive"
	ClassDefault     = "status-default"
)

// StatusBadge maps an asset status to its badge. Matching is
// case-insensitive and "ativo" is accepted as a legacy alias for
// "disponivel". Unknown statuses fall back to the verbatim input with the
// default class so new states render without breaking.
func StatusBadge(status string) Badge {
	switch strings.ToLower(status) {
	case "disponivel", "ativo":
		return Badge{Label: "Disponível", Class: ClassActive}
	case "em_uso":
		return Badge{Label: "Em Uso", Class: ClassInUse}
	case "manutencao":
		return Badge{Label: "Manutenção", Class: ClassMaintenance}
	case "inativo":
		return Badge{Label: "Inativo", Class: ClassInactive}
	}
	return Badge{Label: status, Class: ClassDefault}
}
