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

// MySQLCategoryRepository handles category persistence for MySQL
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, created_at, updated_at) VALUES (?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, uuidBytes, category.Name)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// GetByID retrieves a category by ID
func (r *MySQLCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	var idBytes []byte
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes,
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

	if err := category.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &category, nil
}

// List retrieves categories ordered by name with offset/limit pagination
func (r *MySQLCategoryRepository) List(ctx context.Context, offset, limit int) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list categories")
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		if err := category.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// Update modifies the name of a category
func (r *MySQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE categories SET name = ?, updated_at = ? WHERE id = ?`

	uuidBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, category.Name, time.Now().UTC(), uuidBytes)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update category")
	}

	return rowsAffected(result, domain.ErrCategoryNotFound, "failed to update category")
}

// Delete removes a category and, via ON DELETE CASCADE, its field
// definitions and assets
func (r *MySQLCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM categories WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete category")
	}

	return rowsAffected(result, domain.ErrCategoryNotFound, "failed to delete category")
}
