package usecase

import (
	"context"
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/database"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/inventory/domain"
	outboxDomain "github.com/ativoshub/ativos/internal/outbox/domain"
	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// AssetUseCaseImpl handles asset-related business logic
type AssetUseCaseImpl struct {
	txManager    database.TxManager
	assetRepo    AssetRepository
	categoryRepo CategoryRepository
	fieldDefRepo FieldDefinitionRepository
	outboxRepo   OutboxEventRepository
}

// NewAssetUseCase creates a new AssetUseCaseImpl
func NewAssetUseCase(
	txManager database.TxManager,
	assetRepo AssetRepository,
	categoryRepo CategoryRepository,
	fieldDefRepo FieldDefinitionRepository,
	outboxRepo OutboxEventRepository,
) AssetUseCase {
	return &AssetUseCaseImpl{
		txManager:    txManager,
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		fieldDefRepo: fieldDefRepo,
		outboxRepo:   outboxRepo,
	}
}

// validatePatrimonio validates the patrimony number format
func validatePatrimonio(patrimonio string) error {
	err := validation.Validate(patrimonio,
		validation.Required.Error("patrimonio is required"),
		appValidation.Digits,
		validation.Length(1, 100).Error("patrimonio must be between 1 and 100 characters"),
	)
	return appValidation.WrapValidationError(err)
}

// resolveStatus applies the default status and validates the result
func resolveStatus(status string) (domain.Status, error) {
	if status == "" {
		return domain.StatusDisponivel, nil
	}

	resolved := domain.Status(strings.ToLower(status))
	if !resolved.Valid() {
		return "", domain.ErrInvalidStatus
	}
	return resolved, nil
}

// buildFieldValues validates the value inputs against the category's field
// definitions: every referenced definition must belong to the category and
// each definition may appear at most once.
func (uc *AssetUseCaseImpl) buildFieldValues(ctx context.Context, categoryID uuid.UUID, inputs []AssetFieldValueInput) ([]*domain.AssetFieldValue, error) {
	fieldDefs, err := uc.fieldDefRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	inCategory := make(map[uuid.UUID]bool, len(fieldDefs))
	for _, fieldDef := range fieldDefs {
		inCategory[fieldDef.ID] = true
	}

	values := make([]*domain.AssetFieldValue, 0, len(inputs))
	seen := make(map[uuid.UUID]bool, len(inputs))
	for _, input := range inputs {
		if !inCategory[input.FieldDefinition] {
			return nil, domain.ErrFieldNotInCategory
		}
		if seen[input.FieldDefinition] {
			return nil, domain.ErrDuplicateFieldValue
		}
		seen[input.FieldDefinition] = true

		values = append(values, &domain.AssetFieldValue{
			FieldDefinitionID: input.FieldDefinition,
			Value:             input.Value,
		})
	}

	return values, nil
}

// CreateAsset creates a new asset with its field values and an
// asset.created event
func (uc *AssetUseCaseImpl) CreateAsset(ctx context.Context, input CreateAssetInput) (*domain.Asset, error) {
	if err := validatePatrimonio(input.Patrimonio); err != nil {
		return nil, err
	}

	status, err := resolveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	fieldValues, err := uc.buildFieldValues(ctx, input.CategoryID, input.FieldValues)
	if err != nil {
		return nil, err
	}

	asset := &domain.Asset{
		ID:          uuid.Must(uuid.NewV7()),
		Patrimonio:  input.Patrimonio,
		CategoryID:  input.CategoryID,
		Status:      status,
		FieldValues: fieldValues,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.assetRepo.Create(ctx, asset); err != nil {
			return err
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeAssetCreated, map[string]interface{}{
			"asset_id":    asset.ID,
			"patrimonio":  asset.Patrimonio,
			"category_id": asset.CategoryID,
			"status":      asset.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// GetAsset retrieves an asset by ID including its field values
func (uc *AssetUseCaseImpl) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	return uc.assetRepo.GetByID(ctx, id)
}

// ListAssets retrieves the assets of a category with offset/limit pagination
func (uc *AssetUseCaseImpl) ListAssets(ctx context.Context, categoryID uuid.UUID, offset, limit int) ([]*domain.Asset, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	return uc.assetRepo.ListByCategory(ctx, categoryID, offset, limit)
}

// UpdateAsset modifies the patrimonio and status of an asset. A non-nil
// field value list replaces the whole stored set in the same transaction;
// the asset's category never changes.
func (uc *AssetUseCaseImpl) UpdateAsset(ctx context.Context, id uuid.UUID, input UpdateAssetInput) (*domain.Asset, error) {
	if err := validatePatrimonio(input.Patrimonio); err != nil {
		return nil, err
	}

	status, err := resolveStatus(input.Status)
	if err != nil {
		return nil, err
	}

	asset, err := uc.assetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	asset.Patrimonio = input.Patrimonio
	asset.Status = status

	var fieldValues []*domain.AssetFieldValue
	if input.FieldValues != nil {
		fieldValues, err = uc.buildFieldValues(ctx, asset.CategoryID, input.FieldValues)
		if err != nil {
			return nil, err
		}
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.assetRepo.Update(ctx, asset); err != nil {
			return err
		}

		if input.FieldValues != nil {
			if err := uc.assetRepo.ReplaceFieldValues(ctx, asset.ID, fieldValues); err != nil {
				return err
			}
			asset.FieldValues = fieldValues
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeAssetUpdated, map[string]interface{}{
			"asset_id":   asset.ID,
			"patrimonio": asset.Patrimonio,
			"status":     asset.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// DeleteAsset removes an asset with its field values and creates an
// asset.deleted event
func (uc *AssetUseCaseImpl) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.assetRepo.Delete(ctx, id); err != nil {
			return err
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeAssetDeleted, map[string]interface{}{
			"asset_id": id,
		})
	})
}

// createOutboxEvent stores a pending event alongside the data change it describes
func (uc *AssetUseCaseImpl) createOutboxEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal event payload")
	}

	event := &outboxDomain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(payloadJSON),
		Status:    outboxDomain.OutboxEventStatusPending,
		Retries:   0,
	}

	if err := uc.outboxRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}

	return nil
}
