package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/database"
	"github.com/ativoshub/ativos/internal/inventory/domain"

	apperrors "github.com/ativoshub/ativos/internal/errors"
)

// MySQLFieldDefinitionRepository handles field definition persistence for MySQL
type MySQLFieldDefinitionRepository struct {
	db *sql.DB
}

// NewMySQLFieldDefinitionRepository creates a new MySQLFieldDefinitionRepository
func NewMySQLFieldDefinitionRepository(db *sql.DB) *MySQLFieldDefinitionRepository {
	return &MySQLFieldDefinitionRepository{
		db: db,
	}
}

// Create inserts a new field definition
func (r *MySQLFieldDefinitionRepository) Create(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO field_definitions (id, category_id, name, field_type, position, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := fieldDef.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	categoryIDBytes, err := fieldDef.CategoryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		categoryIDBytes,
		fieldDef.Name,
		fieldDef.FieldType,
		fieldDef.Position,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create field definition")
	}
	return nil
}

// GetByID retrieves a field definition by ID
func (r *MySQLFieldDefinitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	var fieldDef domain.FieldDefinition
	var idBytes, categoryIDBytes []byte
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, category_id, name, field_type, position, created_at, updated_at
			  FROM field_definitions WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes,
		&categoryIDBytes,
		&fieldDef.Name,
		&fieldDef.FieldType,
		&fieldDef.Position,
		&fieldDef.CreatedAt,
		&fieldDef.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFieldDefinitionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get field definition by id")
	}

	if err := fieldDef.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := fieldDef.CategoryID.UnmarshalBinary(categoryIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &fieldDef, nil
}

// ListByCategory retrieves the field definitions of a category in declaration order
func (r *MySQLFieldDefinitionRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, category_id, name, field_type, position, created_at, updated_at
			  FROM field_definitions WHERE category_id = ? ORDER BY position`

	categoryIDBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, categoryIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list field definitions")
	}
	defer rows.Close()

	fieldDefs := make([]*domain.FieldDefinition, 0)
	for rows.Next() {
		var fieldDef domain.FieldDefinition
		var idBytes, catBytes []byte
		err := rows.Scan(
			&idBytes,
			&catBytes,
			&fieldDef.Name,
			&fieldDef.FieldType,
			&fieldDef.Position,
			&fieldDef.CreatedAt,
			&fieldDef.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan field definition")
		}
		if err := fieldDef.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := fieldDef.CategoryID.UnmarshalBinary(catBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		fieldDefs = append(fieldDefs, &fieldDef)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate field definitions")
	}

	return fieldDefs, nil
}

// NextPosition returns the position a new field definition of the category
// should take to preserve declaration order
func (r *MySQLFieldDefinitionRepository) NextPosition(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var position int
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM field_definitions WHERE category_id = ?`

	categoryIDBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal UUID")
	}

	if err := querier.QueryRowContext(ctx, query, categoryIDBytes).Scan(&position); err != nil {
		return 0, apperrors.Wrap(err, "failed to get next field position")
	}

	return position, nil
}

// Update modifies the name and field type of a field definition
func (r *MySQLFieldDefinitionRepository) Update(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE field_definitions SET name = ?, field_type = ?, updated_at = ? WHERE id = ?`

	uuidBytes, err := fieldDef.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		fieldDef.Name,
		fieldDef.FieldType,
		time.Now().UTC(),
		uuidBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update field definition")
	}

	return rowsAffected(result, domain.ErrFieldDefinitionNotFound, "failed to update field definition")
}

// Delete removes a field definition and, via ON DELETE CASCADE, the asset
// values stored for it
func (r *MySQLFieldDefinitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM field_definitions WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete field definition")
	}

	return rowsAffected(result, domain.ErrFieldDefinitionNotFound, "failed to delete field definition")
}
