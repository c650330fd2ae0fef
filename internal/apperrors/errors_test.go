package apperrors

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     error
		expected string
	}{
		{
			name:     "with preset",
			err:      NewValidationError("add preset", "Q1", ErrPresetExists),
			kind:     ErrPresetExists,
			expected: "add preset 'Q1': preset already exists",
		},
		{
			name:     "without preset",
			err:      NewValidationError("delete preset", "", ErrEmptyName),
			kind:     ErrEmptyName,
			expected: "delete preset: preset name can't be empty",
		},
		{
			name:     "last preset",
			err:      NewValidationError("delete preset", "Default Preset", ErrLastPreset),
			kind:     ErrLastPreset,
			expected: "delete preset 'Default Preset': can't delete last preset in the list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.True(t, IsValidation(tt.err))
		})
	}
}

func TestMalformedValueError(t *testing.T) {
	_, cause := strconv.ParseFloat("abc", 64)
	err := &MalformedValueError{Table: "input", Row: 2, Field: "minValue", Value: "abc", Err: cause}

	assert.Equal(t, "malformed category value in input row 2: minValue='abc': "+cause.Error(), err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.False(t, IsValidation(err))

	wrapped := fmt.Errorf("save: %w", err)
	var target *MalformedValueError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "minValue", target.Field)
}

func TestIsValidation_BareKinds(t *testing.T) {
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", ErrUnknownPreset)))
	assert.False(t, IsValidation(ErrNothingSelected))
	assert.False(t, IsValidation(errors.New("disk full")))
	assert.False(t, IsValidation(nil))
}
