package store

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/csv-presets/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"plain", "Q1", nil},
		{"spaces inside", "Konto Privat 2024", nil},
		{"umlauts", "Ausgaben Bär", nil},
		{"dots inside", "v1.2", nil},
		{"max length", strings.Repeat("a", MaxPresetNameLength), nil},
		{"empty", "", apperrors.ErrEmptyName},
		{"whitespace", " \t ", apperrors.ErrEmptyName},
		{"too long", strings.Repeat("a", MaxPresetNameLength+1), apperrors.ErrInvalidName},
		{"slash", "2024/Q1", apperrors.ErrInvalidName},
		{"asterisk", "Q*", apperrors.ErrInvalidName},
		{"question mark", "Q?", apperrors.ErrInvalidName},
		{"quote", `"Q"`, apperrors.ErrInvalidName},
		{"angle brackets", "<Q>", apperrors.ErrInvalidName},
		{"pipe", "Q|1", apperrors.ErrInvalidName},
		{"dot", ".", apperrors.ErrInvalidName},
		{"newline", "Q\n1", apperrors.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidatePresetName_DescribesRule(t *testing.T) {
	err := ValidatePresetName("a|b")
	assert.Contains(t, err.Error(), "must not contain")

	err = ValidatePresetName(strings.Repeat("a", MaxPresetNameLength+1))
	assert.Contains(t, err.Error(), "longer than 100 characters")
}

func TestNormalizePresetName(t *testing.T) {
	assert.Equal(t, "Q1", NormalizePresetName("  Q1\t"))
	assert.Equal(t, "", NormalizePresetName("   "))
}
