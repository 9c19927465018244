// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/go-pwdhash"
	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/database"
	apperrors "github.com/ativoshub/ativos/internal/errors"
	outboxDomain "github.com/ativoshub/ativos/internal/outbox/domain"
	"github.com/ativoshub/ativos/internal/user/domain"
	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	SecretQuestion string `json:"secret_question"`
	SecretAnswer   string `json:"secret_answer"`
}

// UpdateUserInput contains the input data for updating a user
type UpdateUserInput struct {
	Username       string `json:"username"`
	SecretQuestion string `json:"secret_question"`
	SecretAnswer   string `json:"secret_answer"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	UpdateUserRole(ctx context.Context, callerID, targetID uuid.UUID, role domain.Role) error
	DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OutboxEventRepository interface defines outbox event repository operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	txManager      database.TxManager
	userRepo       UserRepository
	outboxRepo     OutboxEventRepository
	passwordHasher *pwdhash.PasswordHasher
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
) (UseCase, error) {
	// Interactive policy for user passwords
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &UserUseCase{
		txManager:      txManager,
		userRepo:       userRepo,
		outboxRepo:     outboxRepo,
		passwordHasher: hasher,
	}, nil
}

// validateRegisterUserInput validates the registration input using jellydator/validation
func (uc *UserUseCase) validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 150).Error("username must be between 3 and 150 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
		validation.Field(&input.SecretQuestion,
			validation.Required.Error("secret question is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("secret question must be between 1 and 255 characters"),
		),
		validation.Field(&input.SecretAnswer,
			validation.Required.Error("secret answer is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterUser registers a new viewer user and creates a user.created event.
// The password and the secret answer are stored hashed; the role is always
// viewer, promotion is a separate admin operation.
func (uc *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := uc.validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwordHasher.Hash([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	hashedAnswer, err := uc.passwordHasher.Hash([]byte(domain.NormalizeSecretAnswer(input.SecretAnswer)))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash secret answer")
	}

	user := &domain.User{
		ID:             uuid.Must(uuid.NewV7()),
		Username:       strings.TrimSpace(input.Username),
		Password:       hashedPassword,
		Role:           domain.RoleViewer,
		SecretQuestion: strings.TrimSpace(input.SecretQuestion),
		SecretAnswer:   hashedAnswer,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeUserCreated, map[string]interface{}{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		})
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// ListUsers retrieves users with offset/limit pagination
func (uc *UserUseCase) ListUsers(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	return uc.userRepo.List(ctx, offset, limit)
}

// UpdateUser modifies the username, secret question and secret answer of a user.
// An empty secret answer keeps the stored hash untouched.
func (uc *UserUseCase) UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 150).Error("username must be between 3 and 150 characters"),
		),
		validation.Field(&input.SecretQuestion,
			validation.Length(0, 255).Error("secret question must be at most 255 characters"),
		),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = strings.TrimSpace(input.Username)
	user.SecretQuestion = strings.TrimSpace(input.SecretQuestion)

	if input.SecretAnswer != "" {
		hashedAnswer, err := uc.passwordHasher.Hash([]byte(domain.NormalizeSecretAnswer(input.SecretAnswer)))
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to hash secret answer")
		}
		user.SecretAnswer = hashedAnswer
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserRole changes the role of the target user. Callers can never change
// their own role, so an admin cannot accidentally demote themselves out of the
// last admin seat.
func (uc *UserUseCase) UpdateUserRole(ctx context.Context, callerID, targetID uuid.UUID, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}

	if callerID == targetID {
		return domain.ErrSelfRoleChange
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.UpdateRole(ctx, targetID, role); err != nil {
			return err
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeUserRoleUpdated, map[string]interface{}{
			"user_id":    targetID,
			"role":       role,
			"updated_by": callerID,
		})
	})
}

// DeleteUser removes the target user. Callers can never delete their own
// account.
func (uc *UserUseCase) DeleteUser(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return domain.ErrSelfDelete
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Delete(ctx, targetID); err != nil {
			return err
		}

		return uc.createOutboxEvent(ctx, outboxDomain.EventTypeUserDeleted, map[string]interface{}{
			"user_id":    targetID,
			"deleted_by": callerID,
		})
	})
}

// createOutboxEvent stores a pending event alongside the data change it describes
func (uc *UserUseCase) createOutboxEvent(ctx context.Context, eventType string, payload map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal event payload")
	}

	event := &outboxDomain.OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(payloadJSON),
		Status:    outboxDomain.OutboxEventStatusPending,
		Retries:   0,
	}

	if err := uc.outboxRepo.Create(ctx, event); err != nil {
		return apperrors.Wrap(err, "failed to create outbox event")
	}

	return nil
}
