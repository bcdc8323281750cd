package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	baseErr := errors.New("base error")

	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("llm_provider", "groq", "base_url", baseErr),
			contains: []string{
				"llm_provider",
				"groq",
				"base_url",
				"base error",
			},
		},
		{
			name: "error without field",
			err:  NewValidationError("llm_provider", "ollama", "", errors.New("addr required")),
			contains: []string{
				"llm_provider",
				"ollama",
				"addr required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	validationErr := NewValidationError("test", "test-id", "field", baseErr)

	unwrapped := validationErr.Unwrap()
	assert.Equal(t, baseErr, unwrapped)
	assert.True(t, errors.Is(validationErr, baseErr))
}

func TestLoadErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *LoadError
		contains []string
	}{
		{
			name: "file load error",
			err: &LoadError{
				File: "trimatch.yaml",
				Err:  errors.New("file not found"),
			},
			contains: []string{
				"failed to load",
				"trimatch.yaml",
				"file not found",
			},
		},
		{
			name: "wrapped sentinel",
			err:  NewLoadError("trimatch.yaml", ErrInvalidYAML),
			contains: []string{
				"failed to load",
				"trimatch.yaml",
				"invalid YAML syntax",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	loadErr := NewLoadError("trimatch.yaml", ErrConfigNotFound)

	assert.True(t, errors.Is(loadErr, ErrConfigNotFound))
}
