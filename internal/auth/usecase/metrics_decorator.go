package usecase

import (
	"context"
	"time"

	authDomain "github.com/ativoshub/ativos/internal/auth/domain"
	"github.com/ativoshub/ativos/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*authDomain.TokenPair, error) {
	start := time.Now()
	pair, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return pair, err
}

// Refresh records metrics for access token refresh operations.
func (a *authUseCaseWithMetrics) Refresh(ctx context.Context, refreshToken string) (string, error) {
	start := time.Now()
	access, err := a.next.Refresh(ctx, refreshToken)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "refresh", status)
	a.metrics.RecordDuration(ctx, "auth", "refresh", time.Since(start), status)

	return access, err
}

// GetSecretQuestion records metrics for secret question lookups.
func (a *authUseCaseWithMetrics) GetSecretQuestion(ctx context.Context, username string) (string, error) {
	start := time.Now()
	question, err := a.next.GetSecretQuestion(ctx, username)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "secret_question", status)
	a.metrics.RecordDuration(ctx, "auth", "secret_question", time.Since(start), status)

	return question, err
}

// ResetPassword records metrics for password reset operations.
func (a *authUseCaseWithMetrics) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	start := time.Now()
	err := a.next.ResetPassword(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "password_reset", status)
	a.metrics.RecordDuration(ctx, "auth", "password_reset", time.Since(start), status)

	return err
}
