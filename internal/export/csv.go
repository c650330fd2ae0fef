// Package export renders category lists and presets for the CLI and reads
// category lists back from CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"fjacquet/csv-presets/internal/apperrors"
	"fjacquet/csv-presets/internal/currencyutils"
	"fjacquet/csv-presets/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV fields unless a caller overrides it.
const DefaultDelimiter = ','

// categoryRecord is the CSV shape of a category. Min and max are kept as
// text so hand-edited files may use the same spellings a table cell accepts.
type categoryRecord struct {
	Category string `csv:"category"`
	Filters  string `csv:"filters"`
	DateFrom string `csv:"dateFrom"`
	DateTo   string `csv:"dateTo"`
	MinValue string `csv:"minValue"`
	MaxValue string `csv:"maxValue"`
}

// WriteCategoriesCSV writes categories with a header row.
func WriteCategoriesCSV(w io.Writer, categories []models.Category, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	records := make([]categoryRecord, 0, len(categories))
	for _, c := range categories {
		row := c.Row()
		records = append(records, categoryRecord{
			Category: row.Name,
			Filters:  row.Filters,
			DateFrom: row.DateFrom,
			DateTo:   row.DateTo,
			MinValue: row.MinValue,
			MaxValue: row.MaxValue,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// ReadCategoriesCSV parses a CSV written by WriteCategoriesCSV. Rows are
// numbered from 1, not counting the header, in a *apperrors.MalformedValueError.
func ReadCategoriesCSV(r io.Reader, delimiter rune) ([]models.Category, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.TrimLeadingSpace = true

	var records []categoryRecord
	if err := gocsv.UnmarshalCSV(csvReader, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Category{}, nil
		}
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	categories := make([]models.Category, 0, len(records))
	for i, rec := range records {
		minValue, err := currencyutils.ParseValue(rec.MinValue)
		if err != nil {
			return nil, &apperrors.MalformedValueError{Table: "csv", Row: i + 1, Field: "minValue", Value: rec.MinValue, Err: err}
		}
		maxValue, err := currencyutils.ParseValue(rec.MaxValue)
		if err != nil {
			return nil, &apperrors.MalformedValueError{Table: "csv", Row: i + 1, Field: "maxValue", Value: rec.MaxValue, Err: err}
		}
		categories = append(categories, models.Category{
			Name:     rec.Category,
			Filters:  rec.Filters,
			DateFrom: rec.DateFrom,
			DateTo:   rec.DateTo,
			MinValue: minValue,
			MaxValue: maxValue,
		})
	}
	return categories, nil
}
