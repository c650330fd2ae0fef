// Package table keeps the two category tables of the editor in sync with the
// selected preset's file.
package table

import "fjacquet/csv-presets/internal/models"

// View is the tabular widget the category lists are edited in. Rows are
// addressed by opaque ids that stay stable while other rows are inserted or
// deleted. Rows, Selection and the Next/Prev walk follow display order.
type View interface {
	Len() int
	Rows() []string
	Row(id string) (models.CategoryRow, bool)
	Insert(index int, row models.CategoryRow) string
	Delete(ids ...string)
	Clear()
	Selection() []string
	SetSelection(ids ...string)
	Focus(id string)
	// Next and Prev return "" at either end.
	Next(id string) string
	Prev(id string) string
}
