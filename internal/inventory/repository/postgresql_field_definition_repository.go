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

// PostgreSQLFieldDefinitionRepository handles field definition persistence for PostgreSQL
type PostgreSQLFieldDefinitionRepository struct {
	db *sql.DB
}

// NewPostgreSQLFieldDefinitionRepository creates a new PostgreSQLFieldDefinitionRepository
func NewPostgreSQLFieldDefinitionRepository(db *sql.DB) *PostgreSQLFieldDefinitionRepository {
	return &PostgreSQLFieldDefinitionRepository{
		db: db,
	}
}

// Create inserts a new field definition
func (r *PostgreSQLFieldDefinitionRepository) Create(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO field_definitions (id, category_id, name, field_type, position, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		fieldDef.ID,
		fieldDef.CategoryID,
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
func (r *PostgreSQLFieldDefinitionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.FieldDefinition, error) {
	var fieldDef domain.FieldDefinition
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, category_id, name, field_type, position, created_at, updated_at
			  FROM field_definitions WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&fieldDef.ID,
		&fieldDef.CategoryID,
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

	return &fieldDef, nil
}

// ListByCategory retrieves the field definitions of a category in declaration order
func (r *PostgreSQLFieldDefinitionRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.FieldDefinition, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, category_id, name, field_type, position, created_at, updated_at
			  FROM field_definitions WHERE category_id = $1 ORDER BY position`

	rows, err := querier.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list field definitions")
	}
	defer rows.Close()

	fieldDefs := make([]*domain.FieldDefinition, 0)
	for rows.Next() {
		var fieldDef domain.FieldDefinition
		err := rows.Scan(
			&fieldDef.ID,
			&fieldDef.CategoryID,
			&fieldDef.Name,
			&fieldDef.FieldType,
			&fieldDef.Position,
			&fieldDef.CreatedAt,
			&fieldDef.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan field definition")
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
func (r *PostgreSQLFieldDefinitionRepository) NextPosition(ctx context.Context, categoryID uuid.UUID) (int, error) {
	var position int
	querier := database.GetTx(ctx, r.db)

	query := `SELECT COALESCE(MAX(position) + 1, 0) FROM field_definitions WHERE category_id = $1`

	if err := querier.QueryRowContext(ctx, query, categoryID).Scan(&position); err != nil {
		return 0, apperrors.Wrap(err, "failed to get next field position")
	}

	return position, nil
}

// Update modifies the name and field type of a field definition
func (r *PostgreSQLFieldDefinitionRepository) Update(ctx context.Context, fieldDef *domain.FieldDefinition) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE field_definitions SET name = $1, field_type = $2, updated_at = $3 WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		fieldDef.Name,
		fieldDef.FieldType,
		time.Now().UTC(),
		fieldDef.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update field definition")
	}

	return rowsAffected(result, domain.ErrFieldDefinitionNotFound, "failed to update field definition")
}

// Delete removes a field definition and, via ON DELETE CASCADE, the asset
// values stored for it
func (r *PostgreSQLFieldDefinitionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM field_definitions WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete field definition")
	}

	return rowsAffected(result, domain.ErrFieldDefinitionNotFound, "failed to delete field definition")
}
