package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ativoshub/ativos/internal/httputil"
	"github.com/ativoshub/ativos/internal/inventory/http/dto"
	"github.com/ativoshub/ativos/internal/inventory/usecase"
)

// FieldDefinitionHandler handles field definition HTTP requests
type FieldDefinitionHandler struct {
	fieldDefUseCase usecase.FieldDefinitionUseCase
	logger          *slog.Logger
}

// NewFieldDefinitionHandler creates a new FieldDefinitionHandler
func NewFieldDefinitionHandler(fieldDefUseCase usecase.FieldDefinitionUseCase, logger *slog.Logger) *FieldDefinitionHandler {
	return &FieldDefinitionHandler{
		fieldDefUseCase: fieldDefUseCase,
		logger:          logger,
	}
}

// CreateHandler appends a field definition to a category's schema.
// POST /api/categories/:id/fields/ - Admin or editor.
func (h *FieldDefinitionHandler) CreateHandler(c *gin.Context) {
	categoryID, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	var req dto.FieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fieldDef, err := h.fieldDefUseCase.CreateFieldDefinition(c.Request.Context(), categoryID, dto.ToFieldDefinitionInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFieldDefinitionResponse(fieldDef))
}

// ListHandler lists a category's field definitions in declaration order.
// GET /api/categories/:id/fields/ - Admin or editor.
func (h *FieldDefinitionHandler) ListHandler(c *gin.Context) {
	categoryID, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	fieldDefs, err := h.fieldDefUseCase.ListFieldDefinitions(c.Request.Context(), categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListFieldDefinitionsResponse(fieldDefs))
}

// GetHandler retrieves a field definition by id.
// GET /api/fields/:id/ - Admin or editor.
func (h *FieldDefinitionHandler) GetHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	fieldDef, err := h.fieldDefUseCase.GetFieldDefinition(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFieldDefinitionResponse(fieldDef))
}

// UpdateHandler modifies a field definition's name and type.
// PUT/PATCH /api/fields/:id/ - Admin or editor.
func (h *FieldDefinitionHandler) UpdateHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	var req dto.FieldDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	fieldDef, err := h.fieldDefUseCase.UpdateFieldDefinition(c.Request.Context(), id, dto.ToFieldDefinitionInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToFieldDefinitionResponse(fieldDef))
}

// DeleteHandler removes a field definition.
// DELETE /api/fields/:id/ - Admin or editor.
func (h *FieldDefinitionHandler) DeleteHandler(c *gin.Context) {
	id, ok := parseIDParam(c, h.logger)
	if !ok {
		return
	}

	if err := h.fieldDefUseCase.DeleteFieldDefinition(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
