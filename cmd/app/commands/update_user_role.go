package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	userDomain "github.com/ativoshub/ativos/internal/user/domain"
	userUseCase "github.com/ativoshub/ativos/internal/user/usecase"
)

// RunUpdateUserRole changes the role of an existing user from the command line.
// The target user is looked up by username. The nil caller ID marks the change
// as a system operation, bypassing the self-demotion guard.
//
// Requirements: Database must be migrated and accessible.
func RunUpdateUserRole(
	ctx context.Context,
	useCase userUseCase.UseCase,
	userRepo userUseCase.UserRepository,
	logger *slog.Logger,
	username string,
	role string,
	io IOTuple,
) error {
	logger.Info("updating user role",
		slog.String("username", username),
		slog.String("role", role),
	)

	targetRole := userDomain.Role(role)
	if !targetRole.Valid() {
		return fmt.Errorf("invalid role: %s (valid options: viewer, editor, admin)", role)
	}

	user, err := userRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := useCase.UpdateUserRole(ctx, uuid.Nil, user.ID, targetRole); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, "\nUser role updated successfully!")
	_, _ = fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID.String())
	_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", targetRole)

	logger.Info("user role updated successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", username),
		slog.String("role", string(targetRole)),
	)

	return nil
}
