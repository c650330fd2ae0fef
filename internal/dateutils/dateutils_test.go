package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantFormat string
		want       time.Time
		wantErr    bool
	}{
		{"display", "01.01.2023", DateLayoutDisplay, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"iso", "2023-12-31", DateLayoutISO, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"short day and month", "3.4.2024", "2.1.2006", time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), false},
		{"padded", "  15.06.2024 ", DateLayoutDisplay, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "someday", "", time.Time{}, true},
		{"impossible", "31.02.2023", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, format)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "29.02.2024", got)

	_, err = NormalizeDate("")
	assert.Error(t, err)
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange("01.01.2023", "31.12.2023"))
	assert.NoError(t, ValidateRange("01.01.2023", "01.01.2023"))
	assert.Error(t, ValidateRange("31.12.2023", "01.01.2023"))
	assert.Error(t, ValidateRange("x", "01.01.2023"))
	assert.Error(t, ValidateRange("01.01.2023", "y"))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Jan 2, 2006", CleanDateString("  Jan   2,  2006 "))
}
