// Package domain defines the core user domain entities and types.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ativoshub/ativos/internal/errors"
)

// Role is the permission level assigned to a user.
type Role string

// Recognized roles, from least to most privileged.
const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// CanWrite reports whether the role may create, edit or delete assets.
func (r Role) CanWrite() bool {
	return r == RoleEditor || r == RoleAdmin
}

// User represents an account in the system. New users start as viewers;
// only an admin can promote them.
type User struct {
	ID             uuid.UUID
	Username       string
	Password       string
	Role           Role
	SecretQuestion string
	SecretAnswer   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeSecretAnswer makes secret answer matching tolerant to case and
// surrounding whitespace. Both hashing and verification must go through it.
func NormalizeSecretAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same username already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidRole indicates the role is not one of viewer, editor or admin.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrSelfRoleChange indicates a user attempted to change their own role.
	ErrSelfRoleChange = errors.Wrap(errors.ErrForbidden, "cannot change your own role")

	// ErrSelfDelete indicates a user attempted to delete their own account.
	ErrSelfDelete = errors.Wrap(errors.ErrForbidden, "cannot delete your own account")

	// ErrSecretQuestionNotSet indicates the user has no secret question configured.
	ErrSecretQuestionNotSet = errors.Wrap(errors.ErrInvalidInput, "secret question not configured")

	// ErrSecretAnswerMismatch indicates the provided secret answer does not match.
	ErrSecretAnswerMismatch = errors.Wrap(errors.ErrInvalidInput, "secret answer is incorrect")
)
