// Package currencyutils coerces the min/max value cells of a category row
// into numbers. Users type amounts the way their bank statements print them,
// so "1.234,56", "1'234.56" and "CHF 12" are all accepted.
package currencyutils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrEmptyValue is returned for a blank cell.
var ErrEmptyValue = errors.New("value is empty")

var currencyPattern = regexp.MustCompile(`(?i)CHF|EUR|USD|GBP|[€$£¥\s]`)

// ParseAmount parses a string representation of an amount into a decimal value.
// It handles formats like "1,234.56", "1.234,56", "1234.56", "1234,56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, ErrEmptyValue
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	return amount, nil
}

// ParseValue parses a min/max cell into the float64 persisted in preset files.
func ParseValue(valueStr string) (float64, error) {
	amount, err := ParseAmount(valueStr)
	if err != nil {
		return 0, err
	}
	return amount.InexactFloat64(), nil
}

// StandardizeAmount converts the accepted spellings to a form decimal.NewFromString understands.
func StandardizeAmount(amountStr string) string {
	amountStr = currencyPattern.ReplaceAllString(amountStr, "")

	// Apostrophes are Swiss thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// English format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		parts := strings.Split(amountStr, ",")
		if len(parts) == 2 && len(parts[1]) != 3 {
			// Comma as decimal separator (1234,5 or 1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma as thousand separator (1,234 or 1,234,567)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	return amountStr
}
