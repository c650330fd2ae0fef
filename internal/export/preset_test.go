package export

import (
	"encoding/json"
	"testing"

	"fjacquet/csv-presets/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleView() PresetView {
	return PresetView{
		Name:     "Q1",
		Selected: true,
		Document: models.PresetDocument{
			Paths:           models.Paths{InputPath: "in.csv", OutputPath: "out.csv"},
			InputCategories: []models.Category{models.NewDefaultCategory()},
		},
	}
}

func TestMarshalPresetYAML(t *testing.T) {
	data, err := MarshalPresetYAML(sampleView())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "preset: Q1\n")
	assert.Contains(t, out, "  paths:\n    input_path: in.csv\n")
	assert.Contains(t, out, "category: Kategorie")

	var back PresetView
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, sampleView().Document.InputCategories, back.Document.InputCategories)
}

func TestMarshalPresetJSON(t *testing.T) {
	data, err := MarshalPresetJSON(sampleView())
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"preset\": \"Q1\"")

	var back PresetView
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, sampleView(), back)
}

func TestMarshalPreset_Formats(t *testing.T) {
	for _, format := range []Format{"", FormatJSON, FormatYAML, "yml"} {
		_, err := MarshalPreset(sampleView(), format)
		assert.NoError(t, err, "format %q", format)
	}
	_, err := MarshalPreset(sampleView(), "xml")
	assert.Error(t, err)
}
