// Package http provides HTTP handlers for the inventory endpoints.
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

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUseCase usecase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// CreateHandler creates a new category.
// POST /api/categories/ - Admin only.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	var req dto.CategoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.CreateCategory(c.Request.Context(), dto.ToCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// ListHandler lists categories with offset/limit pagination.
// GET /api/categories/ - Any authenticated user.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	categories, err := h.categoryUseCase.ListCategories(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// GetHandler retrieves a category with its field definitions in declaration
// order.
// GET /api/categories/:id/ - Any authenticated user.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	category, err := h.categoryUseCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// UpdateHandler modifies a category's name.
// PUT/PATCH /api/categories/:id/ - Admin only.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	category, err := h.categoryUseCase.UpdateCategory(c.Request.Context(), id, dto.ToCategoryInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteHandler removes a category with its field definitions and assets.
// DELETE /api/categories/:id/ - Admin only.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	if err := h.categoryUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIDParam extracts and validates the :id path parameter
func parseIDParam(c *gin.Context, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id format: must be a valid UUID"), logger)
		return uuid.Nil, false
	}
	return id, true
}
