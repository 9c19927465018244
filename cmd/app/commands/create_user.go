package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	userDomain "github.com/ativoshub/ativos/internal/user/domain"
	userUseCase "github.com/ativoshub/ativos/internal/user/usecase"
)

// RunCreateUser registers a new user account from the command line.
// Users are always registered as viewers; when a different role is requested
// the account is promoted right after registration. Outputs the new user ID.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	useCase userUseCase.UseCase,
	logger *slog.Logger,
	username string,
	password string,
	secretQuestion string,
	secretAnswer string,
	role string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	targetRole := userDomain.Role(role)
	if !targetRole.Valid() {
		return fmt.Errorf("invalid role: %s (valid options: viewer, editor, admin)", role)
	}

	input := userUseCase.RegisterUserInput{
		Username:       username,
		Password:       password,
		SecretQuestion: secretQuestion,
		SecretAnswer:   secretAnswer,
	}

	user, err := useCase.RegisterUser(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	// Registration always produces a viewer, promote when another role was asked
	// for. The nil caller ID marks the change as a system operation.
	if targetRole != userDomain.RoleViewer {
		if err := useCase.UpdateUserRole(ctx, uuid.Nil, user.ID, targetRole); err != nil {
			return fmt.Errorf("user created but role promotion failed: %w", err)
		}
	}

	_, _ = fmt.Fprintln(io.Writer, "\nUser created successfully!")
	_, _ = fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", targetRole)

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", username),
		slog.String("role", string(targetRole)),
	)

	return nil
}
