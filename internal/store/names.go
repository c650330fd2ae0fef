package store

import (
	"fmt"
	"strings"
	"unicode"

	"fjacquet/csv-presets/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// MaxPresetNameLength bounds preset names, which double as file names.
const MaxPresetNameLength = 100

type presetNameInput struct {
	Name string `validate:"required,max=100,excludesall=/\\:*?\"<>0x7C,filestem"`
}

var nameValidator = newNameValidator()

func newNameValidator() *validator.Validate {
	v := validator.New()
	// filestem rejects names the filesystem would resolve to something else
	_ = v.RegisterValidation("filestem", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "." || name == ".." {
			return false
		}
		for _, r := range name {
			if unicode.IsControl(r) {
				return false
			}
		}
		return true
	})
	return v
}

// NormalizePresetName trims surrounding whitespace.
func NormalizePresetName(name string) string {
	return strings.TrimSpace(name)
}

// ValidatePresetName checks that name can be used verbatim as a file stem.
// It returns an error wrapping apperrors.ErrEmptyName or apperrors.ErrInvalidName.
func ValidatePresetName(name string) error {
	if NormalizePresetName(name) == "" {
		return apperrors.ErrEmptyName
	}
	if err := nameValidator.Struct(presetNameInput{Name: name}); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", apperrors.ErrInvalidName, describeNameRule(verrs[0].Tag()))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidName, err)
	}
	return nil
}

func describeNameRule(tag string) string {
	switch tag {
	case "max":
		return fmt.Sprintf("longer than %d characters", MaxPresetNameLength)
	case "excludesall":
		return `must not contain any of / \ : * ? " < > |`
	case "filestem":
		return "must not be . or .. or contain control characters"
	default:
		return tag
	}
}
