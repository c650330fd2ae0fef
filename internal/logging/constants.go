package logging

// Standardized field names for structured logging.
const (
	FieldFile       = "file_path"
	FieldPreset     = "preset"
	FieldPresets    = "presets"
	FieldSelected   = "selected_preset"
	FieldTable      = "table"
	FieldOperation  = "operation"
	FieldError      = "error"
	FieldCount      = "count"
	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldRow        = "row"
)
