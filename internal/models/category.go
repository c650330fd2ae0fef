// Package models provides the typed documents persisted by the preset
// editor and the row shape exchanged with the category tables.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CategoryKind selects one of the two category lists of a preset.
type CategoryKind string

const (
	// KindInput holds income categories.
	KindInput CategoryKind = "input"
	// KindOutput holds expense categories.
	KindOutput CategoryKind = "output"
)

// ParseCategoryKind accepts "input"/"output" (case-insensitive) and the
// income/expense aliases.
func ParseCategoryKind(s string) (CategoryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "income", "in":
		return KindInput, nil
	case "output", "expense", "out":
		return KindOutput, nil
	default:
		return "", fmt.Errorf("unknown category kind %q (expected input or output)", s)
	}
}

// DocumentKey returns the preset document key holding this list.
func (k CategoryKind) DocumentKey() string {
	if k == KindOutput {
		return KeyOutputCategories
	}
	return KeyInputCategories
}

// Category is one filter rule used to classify CSV rows.
type Category struct {
	Name     string  `json:"category" csv:"category" yaml:"category"`
	Filters  string  `json:"filters" csv:"filters" yaml:"filters"`
	DateFrom string  `json:"dateFrom" csv:"dateFrom" yaml:"dateFrom"`
	DateTo   string  `json:"dateTo" csv:"dateTo" yaml:"dateTo"`
	MinValue float64 `json:"minValue" csv:"minValue" yaml:"minValue"`
	MaxValue float64 `json:"maxValue" csv:"maxValue" yaml:"maxValue"`
}

// NewDefaultCategory returns the category inserted by "add category".
func NewDefaultCategory() Category {
	return Category{
		Name:     DefaultCategoryName,
		Filters:  DefaultFilters,
		DateFrom: DefaultDateFrom,
		DateTo:   DefaultDateTo,
		MinValue: DefaultMinValue,
		MaxValue: DefaultMaxValue,
	}
}

// Row renders the category the way a table cell shows it.
func (c Category) Row() CategoryRow {
	return CategoryRow{
		Name:     c.Name,
		Filters:  c.Filters,
		DateFrom: c.DateFrom,
		DateTo:   c.DateTo,
		MinValue: FormatValue(c.MinValue),
		MaxValue: FormatValue(c.MaxValue),
	}
}

// CategoryRow is the widget-side form of a Category: every cell is text.
type CategoryRow struct {
	Name     string
	Filters  string
	DateFrom string
	DateTo   string
	MinValue string
	MaxValue string
}

// Values returns the cells in column order.
func (r CategoryRow) Values() []string {
	return []string{r.Name, r.Filters, r.DateFrom, r.DateTo, r.MinValue, r.MaxValue}
}

// CategoryColumns are the column identifiers, matching the JSON keys.
var CategoryColumns = []string{"category", "filters", "dateFrom", "dateTo", "minValue", "maxValue"}

// FormatValue renders a min/max value, always with at least one decimal.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += ".0"
	}
	return s
}
