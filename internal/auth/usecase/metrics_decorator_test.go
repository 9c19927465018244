package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	"github.com/ativoshub/ativos/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

// mockAuthUseCase is a mock implementation of AuthUseCase for decorator testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(ctx context.Context, input LoginInput) (*authDomain.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.TokenPair), args.Error(1)
}

func (m *mockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) GetSecretQuestion(ctx context.Context, username string) (string, error) {
	args := m.Called(ctx, username)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUseCase) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

var _ AuthUseCase = (*mockAuthUseCase)(nil)

func TestMetricsDecorator_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		input := LoginInput{Username: "joao.silva", Password: "Password123"}
		expectedPair := &authDomain.TokenPair{Access: "access-token", Refresh: "refresh-token"}

		mockUseCase.On("Login", ctx, input).Return(expectedPair, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewAuthUseCaseWithMetrics(mockUseCase, mockMetrics)
		pair, err := decorator.Login(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, expectedPair, pair)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		input := LoginInput{Username: "joao.silva", Password: "wrong"}

		mockUseCase.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewAuthUseCaseWithMetrics(mockUseCase, mockMetrics)
		pair, err := decorator.Login(ctx, input)

		assert.Error(t, err)
		assert.Nil(t, pair)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Refresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Refresh", ctx, "refresh-token").Return("new-access", nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "refresh", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "refresh", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		decorator := NewAuthUseCaseWithMetrics(mockUseCase, mockMetrics)
		access, err := decorator.Refresh(ctx, "refresh-token")

		assert.NoError(t, err)
		assert.Equal(t, "new-access", access)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		t.Parallel()
		mockUseCase := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		expectedError := errors.New("token expired")
		mockUseCase.On("Refresh", ctx, "stale-token").Return("", expectedError).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "refresh", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "refresh", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		decorator := NewAuthUseCaseWithMetrics(mockUseCase, mockMetrics)
		access, err := decorator.Refresh(ctx, "stale-token")

		assert.Equal(t, expectedError, err)
		assert.Empty(t, access)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_ResetPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mockUseCase := &mockAuthUseCase{}
	mockMetrics := &mockBusinessMetrics{}

	input := ResetPasswordInput{Username: "joao.silva", SecretAnswer: "rex", NewPassword: "NewPassword456"}

	mockUseCase.On("ResetPassword", ctx, input).Return(nil).Once()
	mockMetrics.On("RecordOperation", ctx, "auth", "password_reset", "success").Return().Once()
	mockMetrics.On("RecordDuration", ctx, "auth", "password_reset", mock.AnythingOfType("time.Duration"), "success").
		Return().
		Once()

	decorator := NewAuthUseCaseWithMetrics(mockUseCase, mockMetrics)
	err := decorator.ResetPassword(ctx, input)

	assert.NoError(t, err)
	mockMetrics.AssertExpectations(t)
}
