package models

// Preset defaults
const (
	DefaultPresetName   = "Default Preset"
	PresetFileExtension = ".json"
)

// Category defaults applied to a freshly added row
const (
	DefaultCategoryName = "Kategorie"
	DefaultFilters      = ""
	DefaultDateFrom     = "01.01.2023"
	DefaultDateTo       = "31.12.2023"
	DefaultMinValue     = 0.0
	DefaultMaxValue     = 1000.0
)

// Document keys
const (
	KeyPaths            = "paths"
	KeyInputCategories  = "input_categories"
	KeyOutputCategories = "output_categories"
	KeyPresetMenu       = "preset_menu"
)

// File permissions
const (
	PermissionDataFile  = 0644
	PermissionDirectory = 0755
)
