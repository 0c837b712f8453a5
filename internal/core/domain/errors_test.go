package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrExecutableNotFound", ErrExecutableNotFound},
		{"ErrTimedOut", ErrTimedOut},
		{"ErrExecutionFailed", ErrExecutionFailed},
		{"ErrParse", ErrParse},
		{"ErrInvalidRequest", ErrInvalidRequest},
		{"ErrRateLimited", ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrExecutableNotFound,
		ErrTimedOut,
		ErrExecutionFailed,
		ErrParse,
		ErrInvalidRequest,
		ErrRateLimited,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests that wrapped errors stay matchable
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("running search: %w", ErrTimedOut)

	assert.True(t, errors.Is(wrapped, ErrTimedOut))
	assert.False(t, errors.Is(wrapped, ErrExecutionFailed))
	assert.Contains(t, wrapped.Error(), "search timed out")
}

// TestErrors_DoubleWrapping tests matching through two layers of context
func TestErrors_DoubleWrapping(t *testing.T) {
	inner := fmt.Errorf("invoking engine: %w", ErrExecutionFailed)
	outer := fmt.Errorf("search: %w", inner)

	assert.True(t, errors.Is(outer, ErrExecutionFailed))
	assert.False(t, errors.Is(outer, ErrTimedOut))
}

// TestErrors_InSwitchStatement tests branching on the taxonomy
func TestErrors_InSwitchStatement(t *testing.T) {
	testErr := fmt.Errorf("search: %w", ErrTimedOut)

	var result string
	switch {
	case errors.Is(testErr, ErrExecutableNotFound):
		result = "not found"
	case errors.Is(testErr, ErrTimedOut):
		result = "timed out"
	case errors.Is(testErr, ErrExecutionFailed):
		result = "failed"
	default:
		result = "unknown"
	}

	assert.Equal(t, "timed out", result)
}
