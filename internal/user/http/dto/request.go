// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/ativoshub/ativos/internal/validation"
)

// RegisterUserRequest represents the API request for user registration
type RegisterUserRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	SecretQuestion string `json:"secret_question"`
	SecretAnswer   string `json:"secret_answer"`
}

// Validate validates the RegisterUserRequest using the jellydator/validation library
func (r *RegisterUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
		validation.Field(&r.SecretQuestion,
			validation.Required.Error("secret question is required"),
		),
		validation.Field(&r.SecretAnswer,
			validation.Required.Error("secret answer is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateUserRequest represents the API request for updating a user
type UpdateUserRequest struct {
	Username       string `json:"username"`
	SecretQuestion string `json:"secret_question"`
	SecretAnswer   string `json:"secret_answer"`
}

// Validate validates the UpdateUserRequest
func (r *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateRoleRequest represents the API request for changing a user role
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate validates the UpdateRoleRequest
func (r *UpdateRoleRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			appValidation.NotBlank,
		),
	)
	return appValidation.WrapValidationError(err)
}
