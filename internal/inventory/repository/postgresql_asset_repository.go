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

// PostgreSQLAssetRepository handles asset persistence for PostgreSQL
type PostgreSQLAssetRepository struct {
	db *sql.DB
}

// NewPostgreSQLAssetRepository creates a new PostgreSQLAssetRepository
func NewPostgreSQLAssetRepository(db *sql.DB) *PostgreSQLAssetRepository {
	return &PostgreSQLAssetRepository{
		db: db,
	}
}

// Create inserts a new asset together with its field values
func (r *PostgreSQLAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO assets (id, patrimonio, category_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		asset.ID,
		asset.Patrimonio,
		asset.CategoryID,
		asset.Status,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrPatrimonioAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create asset")
	}

	return r.insertFieldValues(ctx, asset.ID, asset.FieldValues)
}

// GetByID retrieves an asset by ID including its field values
func (r *PostgreSQLAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, patrimonio, category_id, status, created_at, updated_at
			  FROM assets WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&asset.ID,
		&asset.Patrimonio,
		&asset.CategoryID,
		&asset.Status,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get asset by id")
	}

	fieldValues, err := r.listFieldValues(ctx, asset.ID)
	if err != nil {
		return nil, err
	}
	asset.FieldValues = fieldValues

	return &asset, nil
}

// ListByCategory retrieves the assets of a category ordered by patrimonio,
// including their field values
func (r *PostgreSQLAssetRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, patrimonio, category_id, status, created_at, updated_at
			  FROM assets WHERE category_id = $1 ORDER BY patrimonio OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, categoryID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assets")
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		var asset domain.Asset
		err := rows.Scan(
			&asset.ID,
			&asset.Patrimonio,
			&asset.CategoryID,
			&asset.Status,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan asset")
		}
		assets = append(assets, &asset)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate assets")
	}

	for _, asset := range assets {
		fieldValues, err := r.listFieldValues(ctx, asset.ID)
		if err != nil {
			return nil, err
		}
		asset.FieldValues = fieldValues
	}

	return assets, nil
}

// Update modifies the patrimonio and status of an asset. The category is
// fixed at creation and never updated.
func (r *PostgreSQLAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE assets SET patrimonio = $1, status = $2, updated_at = $3 WHERE id = $4`

	result, err := querier.ExecContext(
		ctx,
		query,
		asset.Patrimonio,
		asset.Status,
		time.Now().UTC(),
		asset.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrPatrimonioAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update asset")
	}

	return rowsAffected(result, domain.ErrAssetNotFound, "failed to update asset")
}

// ReplaceFieldValues removes all field values of an asset and inserts the
// given set. The caller is expected to run this inside a transaction.
func (r *PostgreSQLAssetRepository) ReplaceFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM asset_field_values WHERE asset_id = $1`

	if _, err := querier.ExecContext(ctx, query, assetID); err != nil {
		return apperrors.Wrap(err, "failed to delete asset field values")
	}

	return r.insertFieldValues(ctx, assetID, values)
}

// Delete removes an asset and, via ON DELETE CASCADE, its field values
func (r *PostgreSQLAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM assets WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete asset")
	}

	return rowsAffected(result, domain.ErrAssetNotFound, "failed to delete asset")
}

// insertFieldValues writes one row per field value for the asset
func (r *PostgreSQLAssetRepository) insertFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO asset_field_values (asset_id, field_definition_id, value) VALUES ($1, $2, $3)`

	for _, value := range values {
		_, err := querier.ExecContext(ctx, query, assetID, value.FieldDefinitionID, value.Value)
		if err != nil {
			return apperrors.Wrap(err, "failed to insert asset field value")
		}
	}
	return nil
}

// listFieldValues reads the field values of an asset ordered by the field
// definition positions
func (r *PostgreSQLAssetRepository) listFieldValues(ctx context.Context, assetID uuid.UUID) ([]*domain.AssetFieldValue, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT afv.field_definition_id, afv.value
			  FROM asset_field_values afv
			  JOIN field_definitions fd ON fd.id = afv.field_definition_id
			  WHERE afv.asset_id = $1 ORDER BY fd.position`

	rows, err := querier.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list asset field values")
	}
	defer rows.Close()

	values := make([]*domain.AssetFieldValue, 0)
	for rows.Next() {
		var value domain.AssetFieldValue
		if err := rows.Scan(&value.FieldDefinitionID, &value.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan asset field value")
		}
		values = append(values, &value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate asset field values")
	}

	return values, nil
}
