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

// PostgreSQLCategoryRepository handles category persistence for PostgreSQL
type PostgreSQLCategoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLCategoryRepository creates a new PostgreSQLCategoryRepository
func NewPostgreSQLCategoryRepository(db *sql.DB) *PostgreSQLCategoryRepository {
	return &PostgreSQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category
func (r *PostgreSQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, created_at, updated_at) VALUES ($1, $2, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, category.ID, category.Name)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *PostgreSQLCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return &category, nil
}

// List retrieves categories ordered by name with offset/limit pagination
func (r *PostgreSQLCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// Update modifies the name of a category
func (r *PostgreSQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, category.Name, time.Now().UTC(), category.ID)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	return rowsAffected(result, domain.ErrCategoryNotFound, "failed to update category")
}

// Delete removes a category and, via ON DELETE CASCADE, its field
// definitions and assets
func (r *PostgreSQLCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	return rowsAffected(result, domain.ErrCategoryNotFound, "failed to delete category")
}
