// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/ativoshub/ativos/internal/user/domain"
	"github.com/ativoshub/ativos/internal/user/usecase"
)

// ToRegisterUserInput converts a RegisterUserRequest DTO to a RegisterUserInput use case input
func ToRegisterUserInput(req RegisterUserRequest) usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Username:       req.Username,
		Password:       req.Password,
		SecretQuestion: req.SecretQuestion,
		SecretAnswer:   req.SecretAnswer,
	}
}

// ToUpdateUserInput converts an UpdateUserRequest DTO to an UpdateUserInput use case input
func ToUpdateUserInput(req UpdateUserRequest) usecase.UpdateUserInput {
	return usecase.UpdateUserInput{
		Username:       req.Username,
		SecretQuestion: req.SecretQuestion,
		SecretAnswer:   req.SecretAnswer,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO.
// This enforces the boundary between internal domain models and external API contracts.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Username:       user.Username,
		Role:           string(user.Role),
		SecretQuestion: user.SecretQuestion,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

// ToListUsersResponse converts a slice of domain users to a list API response
func ToListUsersResponse(users []*domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, ToUserResponse(user))
	}
	return ListUsersResponse{
		Data: userResponses,
	}
}
