// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user.
// It excludes the password and secret answer hashes.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	SecretQuestion string    `json:"secret_question,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListUsersResponse represents a paginated list of users in API responses
type ListUsersResponse struct {
	Data []UserResponse `json:"data"`
}
