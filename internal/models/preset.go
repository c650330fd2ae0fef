package models

// Paths holds the CSV input and output file locations of a preset.
type Paths struct {
	InputPath  string `json:"input_path" yaml:"input_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// PresetDocument mirrors one <preset>.json file.
type PresetDocument struct {
	Paths            Paths      `json:"paths" yaml:"paths"`
	InputCategories  []Category `json:"input_categories,omitempty" yaml:"input_categories"`
	OutputCategories []Category `json:"output_categories,omitempty" yaml:"output_categories"`
}

// DefaultPresetDocument is the body written for a new preset.
func DefaultPresetDocument() PresetDocument {
	return PresetDocument{Paths: Paths{}}
}

// Categories returns the list for kind. A missing list is empty.
func (d PresetDocument) Categories(kind CategoryKind) []Category {
	if kind == KindOutput {
		return d.OutputCategories
	}
	return d.InputCategories
}

// SetCategories replaces the list for kind.
func (d *PresetDocument) SetCategories(kind CategoryKind, categories []Category) {
	if categories == nil {
		categories = []Category{}
	}
	if kind == KindOutput {
		d.OutputCategories = categories
		return
	}
	d.InputCategories = categories
}

// Clone returns a deep copy.
func (d PresetDocument) Clone() PresetDocument {
	out := PresetDocument{Paths: d.Paths}
	if d.InputCategories != nil {
		out.InputCategories = append([]Category{}, d.InputCategories...)
	}
	if d.OutputCategories != nil {
		out.OutputCategories = append([]Category{}, d.OutputCategories...)
	}
	return out
}
