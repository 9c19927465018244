package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	authHTTP "github.com/ativoshub/ativos/internal/auth/http"
	"github.com/ativoshub/ativos/internal/user/domain"
	"github.com/ativoshub/ativos/internal/user/http/dto"
	httpMocks "github.com/ativoshub/ativos/internal/user/http/mocks"
	"github.com/ativoshub/ativos/internal/user/usecase"
)

func setupTestHandler(t *testing.T) (*UserHandler, *httpMocks.MockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewUserHandler(mockUseCase, logger)

	return handler, mockUseCase
}

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

// withCallerClaims stores admin claims for callerID in the request context.
func withCallerClaims(c *gin.Context, callerID uuid.UUID) {
	claims := &authDomain.TokenClaims{
		Role:     domain.RoleAdmin,
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: callerID.String(),
		},
	}
	c.Request = c.Request.WithContext(authHTTP.WithClaims(c.Request.Context(), claims))
}

func TestUserHandler_RegisterHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.RegisterUserRequest{
			Username:       "joao.silva",
			Password:       "Password123",
			SecretQuestion: "pergunta",
			SecretAnswer:   "resposta",
		}

		expectedUser := &domain.User{
			ID:       uuid.Must(uuid.NewV7()),
			Username: "joao.silva",
			Role:     domain.RoleViewer,
		}

		mockUseCase.On("RegisterUser", mock.Anything, dto.ToRegisterUserInput(request)).
			Return(expectedUser, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user/register/", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, expectedUser.ID, response.ID)
		assert.Equal(t, "joao.silva", response.Username)
		assert.Equal(t, "viewer", response.Role)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.RegisterUserRequest{Username: "joao.silva"}

		c, w := createTestContext(http.MethodPost, "/api/user/register/", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "RegisterUser")
	})

	t.Run("Error_DuplicateUsername", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.RegisterUserRequest{
			Username:       "joao.silva",
			Password:       "Password123",
			SecretQuestion: "pergunta",
			SecretAnswer:   "resposta",
		}

		mockUseCase.On("RegisterUser", mock.Anything, mock.AnythingOfType("usecase.RegisterUserInput")).
			Return(nil, domain.ErrUserAlreadyExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/api/user/register/", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		users := []*domain.User{
			{ID: uuid.Must(uuid.NewV7()), Username: "ana.souza", Role: domain.RoleAdmin},
			{ID: uuid.Must(uuid.NewV7()), Username: "joao.silva", Role: domain.RoleViewer},
		}

		mockUseCase.On("ListUsers", mock.Anything, 0, 50).Return(users, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/users/", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListUsersResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Len(t, response.Data, 2)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/users/?limit=1000", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "ListUsers")
	})
}

func TestUserHandler_GetHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		user := &domain.User{ID: uuid.Must(uuid.NewV7()), Username: "joao.silva", Role: domain.RoleViewer}

		mockUseCase.On("GetUserByID", mock.Anything, user.ID).Return(user, nil).Once()

		c, w := createTestContext(http.MethodGet, "/api/users/"+user.ID.String()+"/", nil)
		c.Params = gin.Params{{Key: "id", Value: user.ID.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/api/users/not-a-uuid/", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "GetUserByID")
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())
		mockUseCase.On("GetUserByID", mock.Anything, id).Return(nil, domain.ErrUserNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/api/users/"+id.String()+"/", nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_UpdateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())

		request := dto.UpdateUserRequest{
			Username:       "joao.santos",
			SecretQuestion: "nova pergunta",
		}

		updatedUser := &domain.User{ID: id, Username: "joao.santos", Role: domain.RoleViewer}

		mockUseCase.On("UpdateUser", mock.Anything, id, dto.ToUpdateUserInput(request)).
			Return(updatedUser, nil).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/users/"+id.String()+"/", request)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "joao.santos", response.Username)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())

		request := dto.UpdateUserRequest{Username: "joao.santos"}

		mockUseCase.On("UpdateUser", mock.Anything, id, mock.AnythingOfType("usecase.UpdateUserInput")).
			Return(nil, domain.ErrUserNotFound).
			Once()

		c, w := createTestContext(http.MethodPut, "/api/users/"+id.String()+"/", request)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		callerID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		mockUseCase.On("DeleteUser", mock.Anything, callerID, targetID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/api/users/"+targetID.String()+"/", nil)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		withCallerClaims(c, callerID)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_SelfDelete", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("DeleteUser", mock.Anything, id, id).Return(domain.ErrSelfDelete).Once()

		c, w := createTestContext(http.MethodDelete, "/api/users/"+id.String()+"/", nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		withCallerClaims(c, id)

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_NoClaims", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())

		c, w := createTestContext(http.MethodDelete, "/api/users/"+id.String()+"/", nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "DeleteUser")
	})
}

func TestUserHandler_UpdateRoleHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		callerID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		mockUseCase.On("UpdateUserRole", mock.Anything, callerID, targetID, domain.RoleEditor).
			Return(nil).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/api/users/"+targetID.String()+"/update-role/",
			dto.UpdateRoleRequest{Role: "editor"},
		)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		withCallerClaims(c, callerID)

		handler.UpdateRoleHandler(c)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_SelfRoleChange", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		id := uuid.Must(uuid.NewV7())

		mockUseCase.On("UpdateUserRole", mock.Anything, id, id, domain.RoleViewer).
			Return(domain.ErrSelfRoleChange).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/api/users/"+id.String()+"/update-role/",
			dto.UpdateRoleRequest{Role: "viewer"},
		)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		withCallerClaims(c, id)

		handler.UpdateRoleHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Error_InvalidRole", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		callerID := uuid.Must(uuid.NewV7())
		targetID := uuid.Must(uuid.NewV7())

		mockUseCase.On("UpdateUserRole", mock.Anything, callerID, targetID, domain.Role("superuser")).
			Return(domain.ErrInvalidRole).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/api/users/"+targetID.String()+"/update-role/",
			dto.UpdateRoleRequest{Role: "superuser"},
		)
		c.Params = gin.Params{{Key: "id", Value: targetID.String()}}
		withCallerClaims(c, callerID)

		handler.UpdateRoleHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

var _ usecase.UseCase = (*httpMocks.MockUserUseCase)(nil)
