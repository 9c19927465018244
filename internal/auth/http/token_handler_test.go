package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	"github.com/ativoshub/ativos/internal/auth/http/dto"
	httpMocks "github.com/ativoshub/ativos/internal/auth/http/mocks"
	authUseCase "github.com/ativoshub/ativos/internal/auth/usecase"
)

// createTestContext creates a gin test context with an optional JSON body.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

// setupTokenTestHandler creates a test token handler with mocked dependencies.
func setupTokenTestHandler(t *testing.T) (*TokenHandler, *httpMocks.MockAuthUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockAuthUseCase := &httpMocks.MockAuthUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewTokenHandler(mockAuthUseCase, logger)

	return handler, mockAuthUseCase
}

func TestTokenHandler_ObtainPairHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.ObtainPairRequest{
			Username: "joao.silva",
			Password: "Password123",
		}

		expectedPair := &authDomain.TokenPair{
			Access:  "access-token",
			Refresh: "refresh-token",
		}

		mockUseCase.On("Login", mock.Anything, authUseCase.LoginInput{
			Username: "joao.silva",
			Password: "Password123",
		}).
			Return(expectedPair, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/token/", request)

		handler.ObtainPairHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenPairResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "access-token", response.Access)
		assert.Equal(t, "refresh-token", response.Refresh)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTokenTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/api/token/", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.ObtainPairHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "validation_error", response["error"])
	})

	t.Run("Error_MissingUsername", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.ObtainPairRequest{Password: "Password123"}

		c, w := createTestContext(http.MethodPost, "/api/token/", request)

		handler.ObtainPairHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Login")
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.ObtainPairRequest{
			Username: "joao.silva",
			Password: "wrong",
		}

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, authDomain.ErrInvalidCredentials).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/token/", request)

		handler.ObtainPairHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "unauthorized", response["error"])

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_RepositoryError", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.ObtainPairRequest{
			Username: "joao.silva",
			Password: "Password123",
		}

		mockUseCase.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput")).
			Return(nil, errors.New("database connection failed")).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/token/", request)

		handler.ObtainPairHandler(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestTokenHandler_RefreshHandler(t *testing.T) {
	t.Run("Success_ValidRefreshToken", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.RefreshRequest{Refresh: "refresh-token"}

		mockUseCase.On("Refresh", mock.Anything, "refresh-token").
			Return("new-access-token", nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/token/refresh/", request)

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.AccessTokenResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", response.Access)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingRefreshToken", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.RefreshRequest{}

		c, w := createTestContext(http.MethodPost, "/api/token/refresh/", request)

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Refresh")
	})

	t.Run("Error_ExpiredRefreshToken", func(t *testing.T) {
		handler, mockUseCase := setupTokenTestHandler(t)

		request := dto.RefreshRequest{Refresh: "stale-token"}

		mockUseCase.On("Refresh", mock.Anything, "stale-token").
			Return("", authDomain.ErrInvalidToken).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/token/refresh/", request)

		handler.RefreshHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "unauthorized", response["error"])

		mockUseCase.AssertExpectations(t)
	})
}
