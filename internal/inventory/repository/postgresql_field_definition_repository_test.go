package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/inventory/domain"
)

func newMockFieldDefRepo(t *testing.T) (*PostgreSQLFieldDefinitionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLFieldDefinitionRepository(db), mock
}

func fieldDefColumns() []string {
	return []string{"id", "category_id", "name", "field_type", "position", "created_at", "updated_at"}
}

func TestPostgreSQLFieldDefinitionRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		fieldDef := &domain.FieldDefinition{
			ID:         uuid.Must(uuid.NewV7()),
			CategoryID: uuid.Must(uuid.NewV7()),
			Name:       "Cor",
			FieldType:  domain.FieldTypeText,
			Position:   0,
		}

		mock.ExpectExec("INSERT INTO field_definitions").
			WithArgs(fieldDef.ID, fieldDef.CategoryID, fieldDef.Name, fieldDef.FieldType, fieldDef.Position).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, fieldDef)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLFieldDefinitionRepository_ListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("OrderedByPosition", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		categoryID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM field_definitions WHERE category_id").
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows(fieldDefColumns()).
				AddRow(uuid.Must(uuid.NewV7()), categoryID, "Cor", "text", 0, now, now).
				AddRow(uuid.Must(uuid.NewV7()), categoryID, "Voltagem", "number", 1, now, now))

		fieldDefs, err := repo.ListByCategory(ctx, categoryID)
		require.NoError(t, err)
		require.Len(t, fieldDefs, 2)
		assert.Equal(t, "Cor", fieldDefs[0].Name)
		assert.Equal(t, 0, fieldDefs[0].Position)
		assert.Equal(t, domain.FieldTypeNumber, fieldDefs[1].FieldType)
	})

	t.Run("Empty", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		categoryID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery("SELECT (.+) FROM field_definitions WHERE category_id").
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows(fieldDefColumns()))

		fieldDefs, err := repo.ListByCategory(ctx, categoryID)
		require.NoError(t, err)
		assert.Empty(t, fieldDefs)
	})
}

func TestPostgreSQLFieldDefinitionRepository_NextPosition(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCategory", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		categoryID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		position, err := repo.NextPosition(ctx, categoryID)
		require.NoError(t, err)
		assert.Equal(t, 0, position)
	})

	t.Run("AfterExistingFields", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		categoryID := uuid.Must(uuid.NewV7())
		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(categoryID).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

		position, err := repo.NextPosition(ctx, categoryID)
		require.NoError(t, err)
		assert.Equal(t, 3, position)
	})
}

func TestPostgreSQLFieldDefinitionRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		fieldDef := &domain.FieldDefinition{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "Cor Principal",
			FieldType: domain.FieldTypeText,
		}

		mock.ExpectExec("UPDATE field_definitions SET name").
			WithArgs(fieldDef.Name, fieldDef.FieldType, sqlmock.AnyArg(), fieldDef.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, fieldDef)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		fieldDef := &domain.FieldDefinition{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "Cor Principal",
			FieldType: domain.FieldTypeText,
		}

		mock.ExpectExec("UPDATE field_definitions SET name").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, fieldDef)
		assert.True(t, apperrors.Is(err, domain.ErrFieldDefinitionNotFound))
	})
}

func TestPostgreSQLFieldDefinitionRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		id := uuid.Must(uuid.NewV7())
		mock.ExpectExec("DELETE FROM field_definitions").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo, mock := newMockFieldDefRepo(t)

		id := uuid.Must(uuid.NewV7())
		mock.ExpectExec("DELETE FROM field_definitions").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, id)
		assert.True(t, apperrors.Is(err, domain.ErrFieldDefinitionNotFound))
	})
}
