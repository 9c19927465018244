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

// MySQLAssetRepository handles asset persistence for MySQL
type MySQLAssetRepository struct {
	db *sql.DB
}

// NewMySQLAssetRepository creates a new MySQLAssetRepository
func NewMySQLAssetRepository(db *sql.DB) *MySQLAssetRepository {
	return &MySQLAssetRepository{
		db: db,
	}
}

// Create inserts a new asset together with its field values
func (r *MySQLAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO assets (id, patrimonio, category_id, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := asset.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	categoryIDBytes, err := asset.CategoryID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		asset.Patrimonio,
		categoryIDBytes,
		asset.Status,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrPatrimonioAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create asset")
	}

	return r.insertFieldValues(ctx, asset.ID, asset.FieldValues)
}

// GetByID retrieves an asset by ID including its field values
func (r *MySQLAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var asset domain.Asset
	var idBytes, categoryIDBytes []byte
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, patrimonio, category_id, status, created_at, updated_at
			  FROM assets WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes,
		&asset.Patrimonio,
		&categoryIDBytes,
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

	if err := asset.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := asset.CategoryID.UnmarshalBinary(categoryIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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
func (r *MySQLAssetRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, patrimonio, category_id, status, created_at, updated_at
			  FROM assets WHERE category_id = ? ORDER BY patrimonio LIMIT ? OFFSET ?`

	categoryIDBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, categoryIDBytes, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list assets")
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		var asset domain.Asset
		var idBytes, catBytes []byte
		err := rows.Scan(
			&idBytes,
			&asset.Patrimonio,
			&catBytes,
			&asset.Status,
			&asset.CreatedAt,
			&asset.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan asset")
		}
		if err := asset.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := asset.CategoryID.UnmarshalBinary(catBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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
func (r *MySQLAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE assets SET patrimonio = ?, status = ?, updated_at = ? WHERE id = ?`

	uuidBytes, err := asset.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		asset.Patrimonio,
		asset.Status,
		time.Now().UTC(),
		uuidBytes,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrPatrimonioAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update asset")
	}

	return rowsAffected(result, domain.ErrAssetNotFound, "failed to update asset")
}

// ReplaceFieldValues removes all field values of an asset and inserts the
// given set. The caller is expected to run this inside a transaction.
func (r *MySQLAssetRepository) ReplaceFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM asset_field_values WHERE asset_id = ?`

	assetIDBytes, err := assetID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	if _, err := querier.ExecContext(ctx, query, assetIDBytes); err != nil {
		return apperrors.Wrap(err, "failed to delete asset field values")
	}

	return r.insertFieldValues(ctx, assetID, values)
}

// Delete removes an asset and, via ON DELETE CASCADE, its field values
func (r *MySQLAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM assets WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete asset")
	}

	return rowsAffected(result, domain.ErrAssetNotFound, "failed to delete asset")
}

// insertFieldValues writes one row per field value for the asset
func (r *MySQLAssetRepository) insertFieldValues(ctx context.Context, assetID uuid.UUID, values []*domain.AssetFieldValue) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO asset_field_values (asset_id, field_definition_id, value) VALUES (?, ?, ?)`

	assetIDBytes, err := assetID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	for _, value := range values {
		fieldDefBytes, err := value.FieldDefinitionID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal UUID")
		}
		_, err = querier.ExecContext(ctx, query, assetIDBytes, fieldDefBytes, value.Value)
		if err != nil {
			return apperrors.Wrap(err, "failed to insert asset field value")
		}
	}
	return nil
}

// listFieldValues reads the field values of an asset ordered by the field
// definition positions
func (r *MySQLAssetRepository) listFieldValues(ctx context.Context, assetID uuid.UUID) ([]*domain.AssetFieldValue, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT afv.field_definition_id, afv.value
			  FROM asset_field_values afv
			  JOIN field_definitions fd ON fd.id = afv.field_definition_id
			  WHERE afv.asset_id = ? ORDER BY fd.position`

	assetIDBytes, err := assetID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	rows, err := querier.QueryContext(ctx, query, assetIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list asset field values")
	}
	defer rows.Close()

	values := make([]*domain.AssetFieldValue, 0)
	for rows.Next() {
		var value domain.AssetFieldValue
		var fieldDefBytes []byte
		if err := rows.Scan(&fieldDefBytes, &value.Value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan asset field value")
		}
		if err := value.FieldDefinitionID.UnmarshalBinary(fieldDefBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		values = append(values, &value)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate asset field values")
	}

	return values, nil
}
