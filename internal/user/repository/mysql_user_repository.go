// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/database"
	"github.com/ativoshub/ativos/internal/user/domain"

	apperrors "github.com/ativoshub/ativos/internal/errors"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, password, role, secret_question, secret_answer, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
		user.Username,
		user.Password,
		user.Role,
		user.SecretQuestion,
		user.SecretAnswer,
	)
	if err != nil {
		// Check for unique constraint violation (duplicate username)
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role, secret_question, secret_answer, created_at, updated_at
			  FROM users WHERE id = ?`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	return r.scanUser(querier.QueryRowContext(ctx, query, uuidBytes), "failed to get user by id")
}

// GetByUsername retrieves a user by username
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role, secret_question, secret_answer, created_at, updated_at
			  FROM users WHERE username = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, username), "failed to get user by username")
}

// List retrieves users ordered by username with offset/limit pagination
func (r *MySQLUserRepository) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password, role, secret_question, secret_answer, created_at, updated_at
			  FROM users ORDER BY username LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
			&user.Username,
			&user.Password,
			&user.Role,
			&user.SecretQuestion,
			&user.SecretAnswer,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := user.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// Update modifies the username, secret question and secret answer of a user
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET username = ?, secret_question = ?, secret_answer = ?, updated_at = ?
			  WHERE id = ?`

	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.SecretQuestion,
		user.SecretAnswer,
		time.Now().UTC(),
		uuidBytes,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	return checkRowsAffected(result, "failed to update user")
}

// UpdatePassword replaces the password hash of a user identified by username
func (r *MySQLUserRepository) UpdatePassword(ctx context.Context, username string, passwordHash string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET password = ?, updated_at = ? WHERE username = ?`

	result, err := querier.ExecContext(ctx, query, passwordHash, time.Now().UTC(), username)
	if err != nil {
		return apperrors.Wrap(err, "failed to update password")
	}

	return checkRowsAffected(result, "failed to update password")
}

// UpdateRole replaces the role of a user
func (r *MySQLUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET role = ?, updated_at = ? WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, role, time.Now().UTC(), uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update role")
	}

	return checkRowsAffected(result, "failed to update role")
}

// Delete removes a user
func (r *MySQLUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = ?`

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	return checkRowsAffected(result, "failed to delete user")
}

// scanUser reads a single user row, converting the BINARY(16) id back to a UUID
func (r *MySQLUserRepository) scanUser(row *sql.Row, msg string) (*domain.User, error) {
	var user domain.User
	var idBytes []byte

	err := row.Scan(
		&idBytes,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.SecretQuestion,
		&user.SecretAnswer,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, msg)
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
