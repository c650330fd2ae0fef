package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"fjacquet/csv-presets/internal/models"

	"gopkg.in/yaml.v3"
)

// PresetView is a preset together with its name, as printed by "preset show".
type PresetView struct {
	Name     string                `json:"preset" yaml:"preset"`
	Selected bool                  `json:"selected" yaml:"selected"`
	Document models.PresetDocument `json:"document" yaml:"document"`
}

// MarshalPresetYAML renders a preset as YAML.
func MarshalPresetYAML(view PresetView) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return nil, fmt.Errorf("error encoding preset as YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error encoding preset as YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalPresetJSON renders a preset with the same indentation the preset
// files use.
func MarshalPresetJSON(view PresetView) ([]byte, error) {
	data, err := json.MarshalIndent(view, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error encoding preset as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Format is an output format accepted by "preset show".
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// MarshalPreset dispatches on format.
func MarshalPreset(view PresetView, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return MarshalPresetJSON(view)
	case FormatYAML, "yml":
		return MarshalPresetYAML(view)
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}
