package table

import (
	"fmt"

	"fjacquet/csv-presets/internal/models"
)

// MemoryTable is an in-memory View.
type MemoryTable struct {
	name     string
	order    []string
	rows     map[string]models.CategoryRow
	selected map[string]bool
	focus    string
	nextID   int
}

// NewMemoryTable creates an empty table. The name shows up in error messages.
func NewMemoryTable(name string) *MemoryTable {
	return &MemoryTable{
		name:     name,
		rows:     make(map[string]models.CategoryRow),
		selected: make(map[string]bool),
	}
}

// Name returns the table's name.
func (t *MemoryTable) Name() string { return t.name }

func (t *MemoryTable) Len() int { return len(t.order) }

func (t *MemoryTable) Rows() []string {
	return append([]string{}, t.order...)
}

func (t *MemoryTable) Row(id string) (models.CategoryRow, bool) {
	row, ok := t.rows[id]
	return row, ok
}

// Insert places row at index, clamped to the table bounds, and returns its id.
func (t *MemoryTable) Insert(index int, row models.CategoryRow) string {
	t.nextID++
	id := fmt.Sprintf("I%03X", t.nextID)

	if index < 0 || index > len(t.order) {
		index = len(t.order)
	}
	t.order = append(t.order, "")
	copy(t.order[index+1:], t.order[index:])
	t.order[index] = id
	t.rows[id] = row
	return id
}

// Update replaces the cells of an existing row.
func (t *MemoryTable) Update(id string, row models.CategoryRow) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

// Delete removes the given rows. Unknown ids are ignored.
func (t *MemoryTable) Delete(ids ...string) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := t.order[:0]
	for _, id := range t.order {
		if drop[id] {
			delete(t.rows, id)
			delete(t.selected, id)
			if t.focus == id {
				t.focus = ""
			}
			continue
		}
		kept = append(kept, id)
	}
	t.order = kept
}

func (t *MemoryTable) Clear() {
	t.order = nil
	t.rows = make(map[string]models.CategoryRow)
	t.selected = make(map[string]bool)
	t.focus = ""
}

func (t *MemoryTable) Selection() []string {
	var ids []string
	for _, id := range t.order {
		if t.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetSelection replaces the selection. Unknown ids are ignored.
func (t *MemoryTable) SetSelection(ids ...string) {
	t.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := t.rows[id]; ok {
			t.selected[id] = true
		}
	}
}

// Focus moves the cursor to id.
func (t *MemoryTable) Focus(id string) {
	if _, ok := t.rows[id]; ok {
		t.focus = id
	}
}

// Focused returns the row under the cursor, or "".
func (t *MemoryTable) Focused() string { return t.focus }

func (t *MemoryTable) Next(id string) string {
	if i := t.index(id); i >= 0 && i+1 < len(t.order) {
		return t.order[i+1]
	}
	return ""
}

func (t *MemoryTable) Prev(id string) string {
	if i := t.index(id); i > 0 {
		return t.order[i-1]
	}
	return ""
}

// At returns the id at a 0-based display position.
func (t *MemoryTable) At(index int) (string, bool) {
	if index < 0 || index >= len(t.order) {
		return "", false
	}
	return t.order[index], true
}

func (t *MemoryTable) index(id string) int {
	for i, v := range t.order {
		if v == id {
			return i
		}
	}
	return -1
}
