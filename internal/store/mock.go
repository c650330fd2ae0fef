package store

import (
	"fjacquet/csv-presets/internal/models"
)

// MockCategoryStore is an in-memory stand-in for PresetManager.SaveCategories,
// used by table sync tests.
type MockCategoryStore struct {
	Saved map[models.CategoryKind][]models.Category
	Calls []models.CategoryKind

	// Error flags for testing error conditions
	SaveCategoriesError error
	FailKind            models.CategoryKind
}

// SaveCategories records the list, or fails when SaveCategoriesError is set
// (optionally only for FailKind).
func (m *MockCategoryStore) SaveCategories(kind models.CategoryKind, categories []models.Category) error {
	m.Calls = append(m.Calls, kind)
	if m.SaveCategoriesError != nil && (m.FailKind == "" || m.FailKind == kind) {
		return m.SaveCategoriesError
	}
	if m.Saved == nil {
		m.Saved = make(map[models.CategoryKind][]models.Category)
	}
	// Store a copy to avoid external modifications
	m.Saved[kind] = append([]models.Category{}, categories...)
	return nil
}
