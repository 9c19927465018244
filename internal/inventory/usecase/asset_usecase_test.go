package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	dbMocks "github.com/ativoshub/ativos/internal/database/mocks"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/inventory/domain"
	"github.com/ativoshub/ativos/internal/inventory/usecase/mocks"
	outboxDomain "github.com/ativoshub/ativos/internal/outbox/domain"
)

type assetTestDeps struct {
	txManager    *dbMocks.MockTxManager
	assetRepo    *mocks.MockAssetRepository
	categoryRepo *mocks.MockCategoryRepository
	fieldDefRepo *mocks.MockFieldDefinitionRepository
	outboxRepo   *mocks.MockOutboxEventRepository
}

func newAssetUseCase(t *testing.T) (AssetUseCase, *assetTestDeps) {
	t.Helper()

	deps := &assetTestDeps{
		txManager:    &dbMocks.MockTxManager{},
		assetRepo:    &mocks.MockAssetRepository{},
		categoryRepo: &mocks.MockCategoryRepository{},
		fieldDefRepo: &mocks.MockFieldDefinitionRepository{},
		outboxRepo:   &mocks.MockOutboxEventRepository{},
	}

	useCase := NewAssetUseCase(
		deps.txManager,
		deps.assetRepo,
		deps.categoryRepo,
		deps.fieldDefRepo,
		deps.outboxRepo,
	)

	return useCase, deps
}

func TestAssetUseCase_CreateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_DefaultStatus", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())
		fieldDefID := uuid.Must(uuid.NewV7())

		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(&domain.Category{ID: categoryID}, nil).
			Once()
		deps.fieldDefRepo.On("ListByCategory", mock.Anything, categoryID).
			Return([]*domain.FieldDefinition{{ID: fieldDefID, CategoryID: categoryID}}, nil).
			Once()
		deps.assetRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Asset) bool {
			return a.Patrimonio == "100234" &&
				a.CategoryID == categoryID &&
				a.Status == domain.StatusDisponivel &&
				len(a.FieldValues) == 1
		})).Return(nil).Once()
		deps.outboxRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			if e.EventType != "asset.created" || e.Status != outboxDomain.OutboxEventStatusPending {
				return false
			}
			var payload map[string]interface{}
			if err := json.Unmarshal([]byte(e.Payload), &payload); err != nil {
				return false
			}
			return payload["patrimonio"] == "100234"
		})).Return(nil).Once()

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "100234",
			CategoryID: categoryID,
			FieldValues: []AssetFieldValueInput{
				{FieldDefinition: fieldDefID, Value: "Azul"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDisponivel, asset.Status)

		deps.assetRepo.AssertExpectations(t)
		deps.outboxRepo.AssertExpectations(t)
	})

	t.Run("Error_PatrimonioNotDigits", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "AB-1234",
			CategoryID: uuid.Must(uuid.NewV7()),
		})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		deps.assetRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_InvalidStatus", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "100234",
			CategoryID: uuid.Must(uuid.NewV7()),
			Status:     "emprestado",
		})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, domain.ErrInvalidStatus))
		deps.assetRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_FieldOutsideCategory", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())

		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(&domain.Category{ID: categoryID}, nil).
			Once()
		deps.fieldDefRepo.On("ListByCategory", mock.Anything, categoryID).
			Return([]*domain.FieldDefinition{}, nil).
			Once()

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "100234",
			CategoryID: categoryID,
			FieldValues: []AssetFieldValueInput{
				{FieldDefinition: uuid.Must(uuid.NewV7()), Value: "Azul"},
			},
		})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, domain.ErrFieldNotInCategory))
		deps.assetRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_DuplicateFieldValue", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())
		fieldDefID := uuid.Must(uuid.NewV7())

		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(&domain.Category{ID: categoryID}, nil).
			Once()
		deps.fieldDefRepo.On("ListByCategory", mock.Anything, categoryID).
			Return([]*domain.FieldDefinition{{ID: fieldDefID, CategoryID: categoryID}}, nil).
			Once()

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "100234",
			CategoryID: categoryID,
			FieldValues: []AssetFieldValueInput{
				{FieldDefinition: fieldDefID, Value: "Azul"},
				{FieldDefinition: fieldDefID, Value: "Verde"},
			},
		})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, domain.ErrDuplicateFieldValue))
		deps.assetRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Error_CategoryNotFound", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())
		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(nil, domain.ErrCategoryNotFound).
			Once()

		asset, err := useCase.CreateAsset(ctx, CreateAssetInput{
			Patrimonio: "100234",
			CategoryID: categoryID,
		})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, domain.ErrCategoryNotFound))
	})
}

func TestAssetUseCase_UpdateAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ReplacesFieldValues", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		assetID := uuid.Must(uuid.NewV7())
		categoryID := uuid.Must(uuid.NewV7())
		fieldDefID := uuid.Must(uuid.NewV7())

		stored := &domain.Asset{
			ID:         assetID,
			Patrimonio: "100234",
			CategoryID: categoryID,
			Status:     domain.StatusDisponivel,
			FieldValues: []*domain.AssetFieldValue{
				{FieldDefinitionID: fieldDefID, Value: "Azul"},
			},
		}

		deps.assetRepo.On("GetByID", mock.Anything, assetID).Return(stored, nil).Once()
		deps.fieldDefRepo.On("ListByCategory", mock.Anything, categoryID).
			Return([]*domain.FieldDefinition{{ID: fieldDefID, CategoryID: categoryID}}, nil).
			Once()
		deps.assetRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Asset) bool {
			return a.ID == assetID &&
				a.Patrimonio == "100235" &&
				a.Status == domain.StatusEmUso &&
				a.CategoryID == categoryID
		})).Return(nil).Once()
		deps.assetRepo.On("ReplaceFieldValues", mock.Anything, assetID, mock.MatchedBy(func(values []*domain.AssetFieldValue) bool {
			return len(values) == 1 && values[0].Value == "Verde"
		})).Return(nil).Once()
		deps.outboxRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			return e.EventType == "asset.updated"
		})).Return(nil).Once()

		asset, err := useCase.UpdateAsset(ctx, assetID, UpdateAssetInput{
			Patrimonio: "100235",
			Status:     "em_uso",
			FieldValues: []AssetFieldValueInput{
				{FieldDefinition: fieldDefID, Value: "Verde"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "100235", asset.Patrimonio)
		require.Len(t, asset.FieldValues, 1)
		assert.Equal(t, "Verde", asset.FieldValues[0].Value)

		deps.assetRepo.AssertExpectations(t)
	})

	t.Run("Success_NilFieldValuesKeepsStoredSet", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		assetID := uuid.Must(uuid.NewV7())
		categoryID := uuid.Must(uuid.NewV7())

		stored := &domain.Asset{
			ID:         assetID,
			Patrimonio: "100234",
			CategoryID: categoryID,
			Status:     domain.StatusDisponivel,
		}

		deps.assetRepo.On("GetByID", mock.Anything, assetID).Return(stored, nil).Once()
		deps.assetRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Asset")).Return(nil).Once()
		deps.outboxRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.OutboxEvent")).Return(nil).Once()

		_, err := useCase.UpdateAsset(ctx, assetID, UpdateAssetInput{
			Patrimonio: "100234",
			Status:     "manutencao",
		})
		require.NoError(t, err)

		deps.assetRepo.AssertNotCalled(t, "ReplaceFieldValues")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		assetID := uuid.Must(uuid.NewV7())
		deps.assetRepo.On("GetByID", mock.Anything, assetID).
			Return(nil, domain.ErrAssetNotFound).
			Once()

		asset, err := useCase.UpdateAsset(ctx, assetID, UpdateAssetInput{Patrimonio: "100234"})
		assert.Nil(t, asset)
		assert.True(t, apperrors.Is(err, domain.ErrAssetNotFound))
		deps.assetRepo.AssertNotCalled(t, "Update")
	})
}

func TestAssetUseCase_ListAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())
		assets := []*domain.Asset{
			{ID: uuid.Must(uuid.NewV7()), Patrimonio: "100234", CategoryID: categoryID},
		}

		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(&domain.Category{ID: categoryID}, nil).
			Once()
		deps.assetRepo.On("ListByCategory", mock.Anything, categoryID, 0, 50).Return(assets, nil).Once()

		result, err := useCase.ListAssets(ctx, categoryID, 0, 50)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Error_CategoryNotFound", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		categoryID := uuid.Must(uuid.NewV7())
		deps.categoryRepo.On("GetByID", mock.Anything, categoryID).
			Return(nil, domain.ErrCategoryNotFound).
			Once()

		result, err := useCase.ListAssets(ctx, categoryID, 0, 50)
		assert.Nil(t, result)
		assert.True(t, apperrors.Is(err, domain.ErrCategoryNotFound))
		deps.assetRepo.AssertNotCalled(t, "ListByCategory")
	})
}

func TestAssetUseCase_DeleteAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_CreatesEvent", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		assetID := uuid.Must(uuid.NewV7())

		deps.assetRepo.On("Delete", mock.Anything, assetID).Return(nil).Once()
		deps.outboxRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *outboxDomain.OutboxEvent) bool {
			return e.EventType == "asset.deleted"
		})).Return(nil).Once()

		err := useCase.DeleteAsset(ctx, assetID)
		assert.NoError(t, err)
		deps.outboxRepo.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		useCase, deps := newAssetUseCase(t)

		assetID := uuid.Must(uuid.NewV7())
		deps.assetRepo.On("Delete", mock.Anything, assetID).
			Return(domain.ErrAssetNotFound).
			Once()

		err := useCase.DeleteAsset(ctx, assetID)
		assert.True(t, apperrors.Is(err, domain.ErrAssetNotFound))
		deps.outboxRepo.AssertNotCalled(t, "Create")
	})
}
