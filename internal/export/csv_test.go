package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fjacquet/csv-presets/internal/apperrors"
	"fjacquet/csv-presets/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCategoriesCSV(t *testing.T) {
	var buf bytes.Buffer
	cats := []models.Category{
		models.NewDefaultCategory(),
		{Name: "Rent", Filters: "landlord, rent", DateFrom: "01.01.2024", DateTo: "31.12.2024", MinValue: 900, MaxValue: 1500.5},
	}

	require.NoError(t, WriteCategoriesCSV(&buf, cats, 0))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "category,filters,dateFrom,dateTo,minValue,maxValue", lines[0])
	assert.Equal(t, "Kategorie,,01.01.2023,31.12.2023,0.0,1000.0", lines[1])
	assert.Equal(t, `Rent,"landlord, rent",01.01.2024,31.12.2024,900.0,1500.5`, lines[2])
}

func TestWriteCategoriesCSV_Semicolon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCategoriesCSV(&buf, []models.Category{models.NewDefaultCategory()}, ';'))
	assert.True(t, strings.HasPrefix(buf.String(), "category;filters;dateFrom;dateTo;minValue;maxValue\n"))
}

func TestReadCategoriesCSV_RoundTrip(t *testing.T) {
	cats := []models.Category{
		models.NewDefaultCategory(),
		{Name: "Food", Filters: "migros;coop", DateFrom: "01.01.2024", DateTo: "31.12.2024", MinValue: 1.25, MaxValue: 300},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteCategoriesCSV(&buf, cats, 0))

	got, err := ReadCategoriesCSV(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, cats, got)
}

func TestReadCategoriesCSV_LenientAmounts(t *testing.T) {
	in := "category,filters,dateFrom,dateTo,minValue,maxValue\n" +
		"Salary,,01.01.2024,31.12.2024,1'000,CHF 5000.50\n"

	got, err := ReadCategoriesCSV(strings.NewReader(in), 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1000.0, got[0].MinValue)
	assert.Equal(t, 5000.5, got[0].MaxValue)
}

func TestReadCategoriesCSV_Malformed(t *testing.T) {
	in := "category,filters,dateFrom,dateTo,minValue,maxValue\n" +
		"ok,,,,0,1\n" +
		"bad,,,,zero,1\n"

	_, err := ReadCategoriesCSV(strings.NewReader(in), 0)
	var malformed *apperrors.MalformedValueError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Row)
	assert.Equal(t, "minValue", malformed.Field)
	assert.Equal(t, "zero", malformed.Value)
}

func TestReadCategoriesCSV_Empty(t *testing.T) {
	got, err := ReadCategoriesCSV(strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
