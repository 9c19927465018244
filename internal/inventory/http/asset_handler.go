package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/httputil"
	"github.com/ativoshub/ativos/internal/inventory/http/dto"
	"github.com/ativoshub/ativos/internal/inventory/usecase"
)

// AssetHandler handles asset-related HTTP requests
type AssetHandler struct {
	assetUseCase usecase.AssetUseCase
	logger       *slog.Logger
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetUseCase usecase.AssetUseCase, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{
		assetUseCase: assetUseCase,
		logger:       logger,
	}
}

// CreateHandler creates a new asset with its field values.
// POST /api/assets/ - Admin or editor.
func (h *AssetHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateAssetRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	asset, err := h.assetUseCase.CreateAsset(c.Request.Context(), dto.ToCreateAssetInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// ListHandler lists the assets of a category.
// GET /api/assets/?category_id={id} - Any authenticated user.
func (h *AssetHandler) ListHandler(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Query("category_id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("category_id is required and must be a valid UUID"), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	assets, err := h.assetUseCase.ListAssets(c.Request.Context(), categoryID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetsResponse(assets))
}

// GetHandler retrieves an asset with its field values.
// GET /api/assets/:id/ - Any authenticated user.
func (h *AssetHandler) GetHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	asset, err := h.assetUseCase.GetAsset(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// UpdateHandler modifies an asset. A field_values list in the body replaces
// the whole stored set; the asset's category never changes.
// PUT/PATCH /api/assets/:id/ - Admin or editor.
func (h *AssetHandler) UpdateHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	asset, err := h.assetUseCase.UpdateAsset(c.Request.Context(), id, dto.ToUpdateAssetInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// DeleteHandler removes an asset with its field values.
// DELETE /api/assets/:id/ - Admin or editor.
func (h *AssetHandler) DeleteHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	if err := h.assetUseCase.DeleteAsset(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
