// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ativoshub/ativos/internal/auth/http/dto"
	authUseCase "github.com/ativoshub/ativos/internal/auth/usecase"
	"github.com/ativoshub/ativos/internal/httputil"
	customValidation "github.com/ativoshub/ativos/internal/validation"
)

// TokenHandler handles HTTP requests for token operations.
type TokenHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// ObtainPairHandler authenticates a user and issues an access/refresh pair.
// POST /api/token/ - No authentication required (this is the login endpoint).
// Returns 200 OK with both tokens.
func (h *TokenHandler) ObtainPairHandler(c *gin.Context) {
	var req dto.ObtainPairRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
}

// RefreshHandler mints a new access token from a valid refresh token.
// POST /api/token/refresh/ - No authentication required; the refresh token
// itself is the credential. Returns 200 OK with the new access token.
func (h *TokenHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	access, err := h.authUseCase.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AccessTokenResponse{Access: access})
}
