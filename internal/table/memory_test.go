package table

import (
	"testing"

	"fjacquet/csv-presets/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedRow(name string) models.CategoryRow {
	row := models.NewDefaultCategory().Row()
	row.Name = name
	return row
}

func names(t *testing.T, view View) []string {
	t.Helper()
	var out []string
	for _, id := range view.Rows() {
		row, ok := view.Row(id)
		require.True(t, ok)
		out = append(out, row.Name)
	}
	return out
}

func TestMemoryTable_Insert(t *testing.T) {
	tbl := NewMemoryTable("input")
	a := tbl.Insert(0, namedRow("a"))
	b := tbl.Insert(0, namedRow("b"))
	c := tbl.Insert(1, namedRow("c"))
	d := tbl.Insert(99, namedRow("d"))

	assert.Equal(t, []string{b, c, a, d}, tbl.Rows())
	assert.Equal(t, []string{"b", "c", "a", "d"}, names(t, tbl))
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, "input", tbl.Name())

	id, ok := tbl.At(2)
	assert.True(t, ok)
	assert.Equal(t, a, id)
	_, ok = tbl.At(4)
	assert.False(t, ok)
}

func TestMemoryTable_NextPrev(t *testing.T) {
	tbl := NewMemoryTable("t")
	c := tbl.Insert(0, namedRow("c"))
	b := tbl.Insert(0, namedRow("b"))
	a := tbl.Insert(0, namedRow("a"))

	assert.Equal(t, b, tbl.Next(a))
	assert.Equal(t, "", tbl.Next(c))
	assert.Equal(t, b, tbl.Prev(c))
	assert.Equal(t, "", tbl.Prev(a))
	assert.Equal(t, "", tbl.Next("unknown"))
}

func TestMemoryTable_SelectionFollowsDisplayOrder(t *testing.T) {
	tbl := NewMemoryTable("t")
	c := tbl.Insert(0, namedRow("c"))
	b := tbl.Insert(0, namedRow("b"))
	a := tbl.Insert(0, namedRow("a"))

	tbl.SetSelection(c, a, "unknown")
	assert.Equal(t, []string{a, c}, tbl.Selection())

	tbl.Focus(b)
	assert.Equal(t, b, tbl.Focused())
	tbl.Focus("unknown")
	assert.Equal(t, b, tbl.Focused())

	tbl.Delete(b, c)
	assert.Equal(t, []string{a}, tbl.Rows())
	assert.Equal(t, []string{a}, tbl.Selection())
	assert.Equal(t, "", tbl.Focused())
}

func TestMemoryTable_UpdateAndClear(t *testing.T) {
	tbl := NewMemoryTable("t")
	id := tbl.Insert(0, namedRow("a"))

	assert.True(t, tbl.Update(id, namedRow("z")))
	assert.False(t, tbl.Update("nope", namedRow("z")))
	row, _ := tbl.Row(id)
	assert.Equal(t, "z", row.Name)

	tbl.SetSelection(id)
	tbl.Clear()
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.Selection())
	_, ok := tbl.Row(id)
	assert.False(t, ok)

	// ids are never reused after a clear
	assert.NotEqual(t, id, tbl.Insert(0, namedRow("b")))
}
