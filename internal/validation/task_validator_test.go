package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		expectErr bool
		errField  string
	}{
		{
			name:  "accepts valid title",
			title: "Buy milk",
		},
		{
			name:  "accepts minimum length title",
			title: "T",
		},
		{
			name:  "accepts title with surrounding whitespace",
			title: "  Buy milk  ",
		},
		{
			name:      "rejects empty title",
			title:     "",
			expectErr: true,
			errField:  "title",
		},
		{
			name:      "rejects whitespace-only title",
			title:     "   ",
			expectErr: true,
			errField:  "title",
		},
		{
			name:      "rejects title over maximum length",
			title:     strings.Repeat("x", 300),
			expectErr: true,
			errField:  "title",
		},
	}

	validator := NewTaskValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.title)

			if tt.expectErr {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.NotEmpty(t, validationErr.GetFieldErrors(tt.errField))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTitle_ConfiguredBounds(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMinLength = 3
	cfg.Validation.TitleMaxLength = 10

	validator := NewTaskValidatorWithConfig(cfg)

	assert.NoError(t, validator.ValidateTitle("abc"))
	assert.Error(t, validator.ValidateTitle("ab"))
	assert.Error(t, validator.ValidateTitle("abcdefghijk"))
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID(1))
	assert.NoError(t, validator.ValidateTaskID(999))
	assert.Error(t, validator.ValidateTaskID(0))
	assert.Error(t, validator.ValidateTaskID(-1))
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	t.Run("valid task", func(t *testing.T) {
		assert.NoError(t, validator.ValidateTask(domain.Task{ID: 1, Title: "Valid"}))
	})

	t.Run("empty title", func(t *testing.T) {
		assert.Error(t, validator.ValidateTask(domain.Task{ID: 1, Title: ""}))
	})

	t.Run("negative ID", func(t *testing.T) {
		assert.Error(t, validator.ValidateTask(domain.Task{ID: -1, Title: "Valid"}))
	})
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	t.Run("returns trimmed title", func(t *testing.T) {
		title, err := validator.GetValidTitle("  Buy milk  ")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", title)
	})

	t.Run("returns error for invalid title", func(t *testing.T) {
		title, err := validator.GetValidTitle("   ")
		assert.Error(t, err)
		assert.Empty(t, title)
	})
}
