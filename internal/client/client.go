package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	authDTO "github.com/ativoshub/ativos/internal/auth/http/dto"
	"github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/inventory/domain"
	inventoryDTO "github.com/ativoshub/ativos/internal/inventory/http/dto"
	"github.com/ativoshub/ativos/internal/inventory/schema"
)

// Client is a typed HTTP client for the ativos API. All calls take a
// context; cancelling it aborts the transport and surfaces the context
// error, so a caller that navigated away never receives a late result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *CredentialStore
	guard      *Guard
	logger     *slog.Logger
}

// New creates an API client with its own credential store and session guard.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	store := NewCredentialStore()
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		store:      store,
		guard:      NewGuard(store, baseURL, httpClient, logger),
		logger:     logger,
	}
}

// Guard returns the session guard bound to this client's credential store.
func (c *Client) Guard() *Guard {
	return c.guard
}

// Credentials returns the client's credential store.
func (c *Client) Credentials() *CredentialStore {
	return c.store
}

// Login exchanges a username/password pair for a token pair and stores it.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var tokenResp authDTO.TokenPairResponse
	err := c.do(ctx, http.MethodPost, "/api/token/", authDTO.ObtainPairRequest{
		Username: username,
		Password: password,
	}, &tokenResp)
	if err != nil {
		return err
	}
	c.store.SetPair(tokenResp.Access, tokenResp.Refresh)
	return nil
}

// Logout drops the stored credentials.
func (c *Client) Logout() {
	c.store.Clear()
}

// LoadSchema fetches a category detail and returns its field definitions as
// an ordered schema.
func (c *Client) LoadSchema(ctx context.Context, categoryID uuid.UUID) (schema.Schema, error) {
	var category inventoryDTO.CategoryResponse
	err := c.do(ctx, http.MethodGet, "/api/categories/"+categoryID.String()+"/", nil, &category)
	if err != nil {
		return nil, err
	}

	result := make(schema.Schema, 0, len(category.FieldDefinitions))
	for i, field := range category.FieldDefinitions {
		result = append(result, &domain.FieldDefinition{
			ID:         field.ID,
			CategoryID: category.ID,
			Name:       field.Name,
			FieldType:  domain.FieldType(field.FieldType),
			Position:   i,
		})
	}
	return result, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var list inventoryDTO.ListCategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/categories/", nil, &list); err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(list.Data))
	for _, item := range list.Data {
		categories = append(categories, &domain.Category{
			ID:        item.ID,
			Name:      item.Name,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return categories, nil
}

// ListAssets fetches the assets of a category with their field values.
func (c *Client) ListAssets(ctx context.Context, categoryID uuid.UUID) ([]*domain.Asset, error) {
	var list inventoryDTO.ListAssetsResponse
	err := c.do(ctx, http.MethodGet, "/api/assets/?category_id="+categoryID.String(), nil, &list)
	if err != nil {
		return nil, err
	}

	assets := make([]*domain.Asset, 0, len(list.Data))
	for _, item := range list.Data {
		assets = append(assets, toDomainAsset(item))
	}
	return assets, nil
}

// GetAsset fetches a single asset.
func (c *Client) GetAsset(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	var resp inventoryDTO.AssetResponse
	if err := c.do(ctx, http.MethodGet, "/api/assets/"+id.String()+"/", nil, &resp); err != nil {
		return nil, err
	}
	return toDomainAsset(resp), nil
}

// CreateAsset creates an asset within its category.
func (c *Client) CreateAsset(ctx context.Context, req inventoryDTO.CreateAssetRequest) (*domain.Asset, error) {
	var resp inventoryDTO.AssetResponse
	if err := c.do(ctx, http.MethodPost, "/api/assets/", req, &resp); err != nil {
		return nil, err
	}
	return toDomainAsset(resp), nil
}

// UpdateAsset replaces an asset's mutable attributes and, when FieldValues
// is non-nil, its entire value set.
func (c *Client) UpdateAsset(ctx context.Context, id uuid.UUID, req inventoryDTO.UpdateAssetRequest) (*domain.Asset, error) {
	var resp inventoryDTO.AssetResponse
	if err := c.do(ctx, http.MethodPut, "/api/assets/"+id.String()+"/", req, &resp); err != nil {
		return nil, err
	}
	return toDomainAsset(resp), nil
}

// DeleteAsset removes an asset.
func (c *Client) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/assets/"+id.String()+"/", nil, nil)
}

// do performs one API call: JSON in, JSON out, Bearer auth when a token is
// stored. A cancelled context returns the context error so callers can
// discard the invocation wholesale.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if access := c.store.Access(); access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}
	return nil
}

// statusError maps a non-2xx response to a domain error sentinel so callers
// can branch with errors.Is.
func statusError(code int) error {
	switch code {
	case http.StatusUnauthorized:
		return errors.Wrap(errors.ErrUnauthorized, "request rejected")
	case http.StatusForbidden:
		return errors.Wrap(errors.ErrForbidden, "request rejected")
	case http.StatusNotFound:
		return errors.Wrap(errors.ErrNotFound, "resource not found")
	case http.StatusConflict:
		return errors.Wrap(errors.ErrConflict, "resource conflict")
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.Wrap(errors.ErrInvalidInput, "request rejected")
	default:
		return fmt.Errorf("unexpected response status %d", code)
	}
}

func toDomainAsset(resp inventoryDTO.AssetResponse) *domain.Asset {
	values := make([]*domain.AssetFieldValue, 0, len(resp.FieldValues))
	for _, value := range resp.FieldValues {
		values = append(values, &domain.AssetFieldValue{
			FieldDefinitionID: value.FieldDefinition,
			Value:             value.Value,
		})
	}
	return &domain.Asset{
		ID:          resp.ID,
		Patrimonio:  resp.Patrimonio,
		CategoryID:  resp.Category,
		Status:      domain.Status(resp.Status),
		FieldValues: values,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
