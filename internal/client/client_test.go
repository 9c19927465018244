package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDTO "github.com/ativoshub/ativos/internal/auth/http/dto"
	"github.com/ativoshub/ativos/internal/errors"
	inventoryDTO "github.com/ativoshub/ativos/internal/inventory/http/dto"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), discardLogger())
}

func TestClient_Login(t *testing.T) {
	t.Run("Success_StoresTokenPair", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/token/", r.URL.Path)

			var req authDTO.ObtainPairRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)

			_ = json.NewEncoder(w).Encode(authDTO.TokenPairResponse{
				Access:  "access-token",
				Refresh: "refresh-token",
			})
		}))

		err := apiClient.Login(context.Background(), "alice", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "access-token", apiClient.Credentials().Access())
		assert.Equal(t, "refresh-token", apiClient.Credentials().Refresh())
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))

		err := apiClient.Login(context.Background(), "alice", "wrong")

		assert.ErrorIs(t, err, errors.ErrUnauthorized)
		assert.Empty(t, apiClient.Credentials().Access(), "failed login must not store credentials")
	})
}

func TestClient_Logout(t *testing.T) {
	apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	apiClient.Credentials().SetPair("access", "refresh")

	apiClient.Logout()

	assert.Empty(t, apiClient.Credentials().Access())
	assert.Empty(t, apiClient.Credentials().Refresh())
}

func TestClient_LoadSchema(t *testing.T) {
	t.Run("Success_OrderedFieldDefinitions", func(t *testing.T) {
		categoryID := uuid.Must(uuid.NewV7())
		firstID := uuid.Must(uuid.NewV7())
		secondID := uuid.Must(uuid.NewV7())

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/categories/"+categoryID.String()+"/", r.URL.Path)
			assert.Equal(t, "Bearer stored-access", r.Header.Get("Authorization"))

			_ = json.NewEncoder(w).Encode(inventoryDTO.CategoryResponse{
				ID:   categoryID,
				Name: "Notebooks",
				FieldDefinitions: []inventoryDTO.FieldDefinitionResponse{
					{ID: firstID, Name: "Cor", FieldType: "text"},
					{ID: secondID, Name: "Voltagem", FieldType: "number"},
				},
			})
		}))
		apiClient.Credentials().SetPair("stored-access", "stored-refresh")

		loaded, err := apiClient.LoadSchema(context.Background(), categoryID)

		require.NoError(t, err)
		require.Len(t, loaded, 2)
		assert.Equal(t, firstID, loaded[0].ID)
		assert.Equal(t, "Cor", loaded[0].Name)
		assert.Equal(t, 0, loaded[0].Position)
		assert.Equal(t, secondID, loaded[1].ID)
		assert.Equal(t, 1, loaded[1].Position)
	})

	t.Run("Error_CategoryNotFound", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		_, err := apiClient.LoadSchema(context.Background(), uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestClient_ListAssets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		categoryID := uuid.Must(uuid.NewV7())

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/assets/", r.URL.Path)
			assert.Equal(t, categoryID.String(), r.URL.Query().Get("category_id"))

			_ = json.NewEncoder(w).Encode(inventoryDTO.ListAssetsResponse{
				Data: []inventoryDTO.AssetResponse{
					{
						ID:         uuid.Must(uuid.NewV7()),
						Patrimonio: "123456",
						Category:   categoryID,
						Status:     "disponivel",
						FieldValues: []inventoryDTO.AssetFieldValueResponse{
							{FieldDefinition: uuid.Must(uuid.NewV7()), Value: "Preto"},
						},
					},
				},
			})
		}))

		assets, err := apiClient.ListAssets(context.Background(), categoryID)

		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "123456", assets[0].Patrimonio)
		assert.Equal(t, categoryID, assets[0].CategoryID)
		require.Len(t, assets[0].FieldValues, 1)
		assert.Equal(t, "Preto", assets[0].FieldValues[0].Value)
	})

	t.Run("CancelledContext_NeverDeliversAResult", func(t *testing.T) {
		started := make(chan struct{})

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))

		ctx, cancel := context.WithCancel(context.Background())

		type result struct {
			assets int
			err    error
		}
		results := make(chan result, 1)
		go func() {
			assets, err := apiClient.ListAssets(ctx, uuid.Must(uuid.NewV7()))
			results <- result{assets: len(assets), err: err}
		}()

		<-started
		cancel()

		select {
		case r := <-results:
			assert.ErrorIs(t, r.err, context.Canceled)
			assert.Zero(t, r.assets, "a cancelled call must not deliver assets")
		case <-time.After(5 * time.Second):
			t.Fatal("cancelled call did not return")
		}
	})
}

func TestClient_CreateAsset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		categoryID := uuid.Must(uuid.NewV7())
		assetID := uuid.Must(uuid.NewV7())

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/assets/", r.URL.Path)

			var req inventoryDTO.CreateAssetRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "123456", req.Patrimonio)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(inventoryDTO.AssetResponse{
				ID:         assetID,
				Patrimonio: req.Patrimonio,
				Category:   req.Category,
				Status:     "disponivel",
			})
		}))

		asset, err := apiClient.CreateAsset(context.Background(), inventoryDTO.CreateAssetRequest{
			Patrimonio: "123456",
			Category:   categoryID,
		})

		require.NoError(t, err)
		assert.Equal(t, assetID, asset.ID)
		assert.Equal(t, categoryID, asset.CategoryID)
	})

	t.Run("Error_DuplicatePatrimonio", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))

		_, err := apiClient.CreateAsset(context.Background(), inventoryDTO.CreateAssetRequest{
			Patrimonio: "123456",
			Category:   uuid.Must(uuid.NewV7()),
		})

		assert.ErrorIs(t, err, errors.ErrConflict)
	})

	t.Run("Error_ValidationRejected", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))

		_, err := apiClient.CreateAsset(context.Background(), inventoryDTO.CreateAssetRequest{
			Patrimonio: "ABC",
			Category:   uuid.Must(uuid.NewV7()),
		})

		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestClient_DeleteAsset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assetID := uuid.Must(uuid.NewV7())

		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/assets/"+assetID.String()+"/", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))

		err := apiClient.DeleteAsset(context.Background(), assetID)

		assert.NoError(t, err)
	})

	t.Run("Error_Forbidden", func(t *testing.T) {
		apiClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		err := apiClient.DeleteAsset(context.Background(), uuid.Must(uuid.NewV7()))

		assert.ErrorIs(t, err, errors.ErrForbidden)
	})
}
