package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/metrics"
	"github.com/ativoshub/ativos/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// RegisterUser records metrics for user registration operations.
func (u *userUseCaseWithMetrics) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.RegisterUser(ctx, input)
	u.record(ctx, "user_register", start, err)
	return user, err
}

// GetUserByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUserByID(ctx, id)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// ListUsers records metrics for user listing operations.
func (u *userUseCaseWithMetrics) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.ListUsers(ctx, offset, limit)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// UpdateUser records metrics for user update operations.
func (u *userUseCaseWithMetrics) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	input UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.UpdateUser(ctx, id, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// UpdateUserRole records metrics for role change operations.
func (u *userUseCaseWithMetrics) UpdateUserRole(
	ctx context.Context,
	callerID, targetID uuid.UUID,
	role domain.Role,
) error {
	start := time.Now()
	err := u.next.UpdateUserRole(ctx, callerID, targetID, role)
	u.record(ctx, "role_update", start, err)
	return err
}

// DeleteUser records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	start := time.Now()
	err := u.next.DeleteUser(ctx, callerID, targetID)
	u.record(ctx, "user_delete", start, err)
	return err
}
