// Package apperrors defines the error kinds raised by the preset and
// category layers. Callers match kinds with errors.Is and inspect details
// with errors.As.
package apperrors

import (
	"errors"
	"fmt"
)

// Validation kinds. These never leave any state modified.
var (
	ErrEmptyName       = errors.New("preset name can't be empty")
	ErrInvalidName     = errors.New("preset name is not a valid file name")
	ErrPresetExists    = errors.New("preset already exists")
	ErrPresetNotFound  = errors.New("preset does not exist")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrLastPreset      = errors.New("can't delete last preset in the list")
	ErrNothingSelected = errors.New("select a row first")
)

// ValidationError represents a rejected preset operation.
type ValidationError struct {
	Operation string
	Preset    string
	Err       error
}

func (e *ValidationError) Error() string {
	if e.Preset == "" {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s '%s': %v", e.Operation, e.Preset, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps one of the validation kinds with its context.
func NewValidationError(operation, preset string, kind error) error {
	return &ValidationError{Operation: operation, Preset: preset, Err: kind}
}

// MalformedValueError represents a category cell that could not be coerced
// to its persisted type.
type MalformedValueError struct {
	Table string
	Row   int
	Field string
	Value string
	Err   error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed category value in %s row %d: %s='%s': %v",
		e.Table, e.Row, e.Field, e.Value, e.Err)
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is one of the validation kinds.
func IsValidation(err error) bool {
	var v *ValidationError
	if errors.As(err, &v) {
		return true
	}
	for _, kind := range []error{
		ErrEmptyName, ErrInvalidName, ErrPresetExists,
		ErrPresetNotFound, ErrUnknownPreset, ErrLastPreset,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
