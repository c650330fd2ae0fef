package table

import (
	"errors"

	"fjacquet/csv-presets/internal/apperrors"
	"fjacquet/csv-presets/internal/currencyutils"
	"fjacquet/csv-presets/internal/models"
)

// CategoryStore persists one category list of the selected preset.
// store.PresetManager satisfies it.
type CategoryStore interface {
	SaveCategories(kind models.CategoryKind, categories []models.Category) error
}

// AddRow inserts a default category at the top of view.
func AddRow(view View) string {
	return InsertCategory(view, models.NewDefaultCategory())
}

// InsertCategory inserts c at the top of view.
func InsertCategory(view View, c models.Category) string {
	return view.Insert(0, c.Row())
}

// DeleteSelected removes the selected rows and moves selection and focus to
// the row after the last selected one, or failing that to the row before the
// first selected one. It returns the id of that row ("" if the table is now
// empty) or apperrors.ErrNothingSelected.
func DeleteSelected(view View) (string, error) {
	selection := view.Selection()
	if len(selection) == 0 {
		return "", apperrors.ErrNothingSelected
	}
	selected := make(map[string]bool, len(selection))
	for _, id := range selection {
		selected[id] = true
	}

	successor := view.Next(selection[len(selection)-1])
	for successor != "" && selected[successor] {
		successor = view.Next(successor)
	}
	if successor == "" {
		successor = view.Prev(selection[0])
		for successor != "" && selected[successor] {
			successor = view.Prev(successor)
		}
	}

	view.Delete(selection...)
	if successor == "" {
		view.SetSelection()
		return "", nil
	}
	view.SetSelection(successor)
	view.Focus(successor)
	return successor, nil
}

// Collect reads the rows of view in display order. Min and max cells are
// coerced to numbers; a cell that does not parse yields a
// *apperrors.MalformedValueError naming the 1-based row.
func Collect(kind models.CategoryKind, view View) ([]models.Category, error) {
	ids := view.Rows()
	categories := make([]models.Category, 0, len(ids))
	for i, id := range ids {
		row, ok := view.Row(id)
		if !ok {
			continue
		}
		minValue, err := currencyutils.ParseValue(row.MinValue)
		if err != nil {
			return nil, malformed(kind, i, "minValue", row.MinValue, err)
		}
		maxValue, err := currencyutils.ParseValue(row.MaxValue)
		if err != nil {
			return nil, malformed(kind, i, "maxValue", row.MaxValue, err)
		}
		categories = append(categories, models.Category{
			Name:     row.Name,
			Filters:  row.Filters,
			DateFrom: row.DateFrom,
			DateTo:   row.DateTo,
			MinValue: minValue,
			MaxValue: maxValue,
		})
	}
	return categories, nil
}

func malformed(kind models.CategoryKind, index int, field, value string, err error) error {
	return &apperrors.MalformedValueError{
		Table: string(kind),
		Row:   index + 1,
		Field: field,
		Value: value,
		Err:   err,
	}
}

// Save collects one view and stores it under kind.
func Save(store CategoryStore, kind models.CategoryKind, view View) error {
	categories, err := Collect(kind, view)
	if err != nil {
		return err
	}
	return store.SaveCategories(kind, categories)
}

// SaveStable stores view in reverse display order, so that a later Load
// shows the rows in the order they have now.
func SaveStable(store CategoryStore, kind models.CategoryKind, view View) error {
	categories, err := Collect(kind, view)
	if err != nil {
		return err
	}
	for i, j := 0, len(categories)-1; i < j; i, j = i+1, j-1 {
		categories[i], categories[j] = categories[j], categories[i]
	}
	return store.SaveCategories(kind, categories)
}

// SaveAll saves the input and the output table independently. A failure in
// one does not prevent the other; both errors are returned joined.
func SaveAll(store CategoryStore, input, output View) error {
	return errors.Join(
		Save(store, models.KindInput, input),
		Save(store, models.KindOutput, output),
	)
}

// Load replaces the rows of view with categories. Each category is inserted
// at the top, so the view shows the list in reverse file order.
func Load(view View, categories []models.Category) {
	view.Clear()
	for _, c := range categories {
		InsertCategory(view, c)
	}
}

// LoadAll fills both views from a preset document.
func LoadAll(doc models.PresetDocument, input, output View) {
	Load(input, doc.InputCategories)
	Load(output, doc.OutputCategories)
}
