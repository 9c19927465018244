package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/ativoshub/ativos/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("error is wrapped as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("name: cannot be blank"))
		assert.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "name: cannot be blank")
	})
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:     8,
		RequireUpper:  true,
		RequireLower:  true,
		RequireNumber: true,
	}

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "Password1", true},
		{"too short", "Pass1", false},
		{"missing uppercase", "password1", false},
		{"missing lowercase", "PASSWORD1", false},
		{"missing number", "Passwords", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	t.Run("non-string value", func(t *testing.T) {
		assert.Error(t, rule.Validate(42))
	})
}

func TestDigits(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"all digits", "20240001", true},
		{"single digit", "7", true},
		{"contains letters", "ABC123", false},
		{"contains spaces", "123 456", false},
		{"contains dash", "123-456", false},
		{"empty string is skipped", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Digits.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"simple username", "joao.silva", true},
		{"with underscore and dash", "joao_silva-2", true},
		{"with spaces", "joao silva", false},
		{"with at sign", "joao@silva", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username.Validate(tt.value)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("notebook"))
	assert.Error(t, NoWhitespace.Validate(" notebook"))
	assert.Error(t, NoWhitespace.Validate("notebook "))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("notebook"))
	assert.Error(t, NotBlank.Validate("   "))
}
