// Package dateutils handles the date cells of category rows. Dates are kept
// as display strings in the DD.MM.YYYY form; this package parses user input
// in other common layouts and normalizes it to that form.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted as input
const (
	DateLayoutDisplay = "02.01.2006"
	DateLayoutISO     = "2006-01-02"
	DateLayoutUS      = "01/02/2006"
)

// CommonFormats is a list of formats to try when parsing user input.
// The display layout comes first so DD.MM.YYYY always wins.
var CommonFormats = []string{
	DateLayoutDisplay,
	DateLayoutISO,
	"2.1.2006",
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeDate parses dateStr and renders it in the display layout.
func NormalizeDate(dateStr string) (string, error) {
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToDisplay(t), nil
}

// ToDisplay formats a date as DD.MM.YYYY.
func ToDisplay(date time.Time) string {
	return date.Format(DateLayoutDisplay)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ValidateRange checks that both dates parse and from is not after to.
func ValidateRange(from, to string) error {
	start, _, err := ParseDate(from)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, _, err := ParseDate(to)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if start.After(end) {
		return fmt.Errorf("start date %s is after end date %s", ToDisplay(start), ToDisplay(end))
	}
	return nil
}
