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

// PasswordHandler handles HTTP requests for secret-question password recovery.
type PasswordHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewPasswordHandler creates a new password handler with required dependencies.
func NewPasswordHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *PasswordHandler {
	return &PasswordHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// GetSecretQuestionHandler returns the secret question configured for a username.
// POST /api/user/get-secret-question/ - No authentication required.
// Returns 200 OK with the question, 404 if the user does not exist or has no
// question configured.
func (h *PasswordHandler) GetSecretQuestionHandler(c *gin.Context) {
	var req dto.SecretQuestionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	question, err := h.authUseCase.GetSecretQuestion(c.Request.Context(), req.Username)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SecretQuestionResponse{SecretQuestion: question})
}

// ResetPasswordHandler sets a new password after verifying the secret answer.
// POST /api/user/reset-password/ - No authentication required.
// Returns 204 No Content on success.
func (h *PasswordHandler) ResetPasswordHandler(c *gin.Context) {
	var req dto.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.authUseCase.ResetPassword(c.Request.Context(), authUseCase.ResetPasswordInput{
		Username:     req.Username,
		SecretAnswer: req.SecretAnswer,
		NewPassword:  req.NewPassword,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
