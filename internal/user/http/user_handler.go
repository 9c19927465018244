// Package http provides HTTP handlers for user-related operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/ativoshub/ativos/internal/auth/http"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	"github.com/ativoshub/ativos/internal/httputil"
	"github.com/ativoshub/ativos/internal/user/domain"
	"github.com/ativoshub/ativos/internal/user/http/dto"
	"github.com/ativoshub/ativos/internal/user/usecase"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new viewer user.
// POST /api/user/register/ - No authentication required.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), dto.ToRegisterUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// ListHandler lists users with offset/limit pagination.
// GET /api/users/ - Admin only.
func (h *UserHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	users, err := h.userUseCase.ListUsers(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// GetHandler retrieves a single user by id.
// GET /api/users/:id/ - Admin only.
func (h *UserHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateHandler modifies a user's username and secret question/answer.
// PUT/PATCH /api/users/:id/ - Admin only.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), id, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteHandler removes a user. Deleting one's own account is forbidden.
// DELETE /api/users/:id/ - Admin only.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	callerID, ok := h.callerID(c)
	if !ok {
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), callerID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateRoleHandler changes a user's role. Changing one's own role is forbidden.
// PUT /api/users/:id/update-role/ - Admin only.
func (h *UserHandler) UpdateRoleHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	callerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	err := h.userUseCase.UpdateUserRole(c.Request.Context(), callerID, id, domain.Role(req.Role))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID extracts and validates the :id path parameter
func (h *UserHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid id format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

// callerID resolves the authenticated caller from the verified token claims
func (h *UserHandler) callerID(c *gin.Context) (uuid.UUID, bool) {
	claims, ok := authHTTP.GetClaims(c.Request.Context())
	if !ok || claims == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return uuid.Nil, false
	}

	callerID, err := claims.UserID()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return uuid.Nil, false
	}

	return callerID, true
}
