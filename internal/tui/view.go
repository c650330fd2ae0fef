package tui

import (
	"fmt"
	"strings"

	"fjacquet/csv-presets/internal/models"
	"fjacquet/csv-presets/internal/table"

	"github.com/charmbracelet/lipgloss"
)

// columnWidths are the display widths of the category columns.
var columnWidths = []int{18, 24, 10, 10, 9, 9}

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("CSV categorization presets"))
	b.WriteString("\n")
	b.WriteString(m.renderPresets())
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("input:  %s", orDash(m.session.paths.InputPath))))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("output: %s", orDash(m.session.paths.OutputPath))))
	b.WriteString("\n\n")

	b.WriteString(m.renderTable(0, "Income categories"))
	b.WriteString("\n")
	b.WriteString(m.renderTable(1, "Expense categories"))
	b.WriteString("\n")

	if m.mode != ModeBrowse {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.statusStyle().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(m.help.View(m.keymap)))
	return b.String()
}

func (m Model) renderPresets() string {
	parts := make([]string, 0, len(m.session.presets))
	for _, p := range m.session.presets {
		if p == m.session.selected {
			parts = append(parts, m.theme.PresetActive.Render(p))
			continue
		}
		parts = append(parts, m.theme.PresetOther.Render(p))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderTable(index int, title string) string {
	t := m.tables[index]
	active := index == m.active

	lines := []string{m.theme.Header.Render(title), m.theme.Header.Render(formatCells("  ", models.CategoryColumns, -1, m.theme))}
	if t.Len() == 0 {
		lines = append(lines, m.theme.Subtitle.Render("  (no categories)"))
	}
	selected := make(map[string]bool)
	for _, id := range t.Selection() {
		selected[id] = true
	}
	for _, id := range t.Rows() {
		lines = append(lines, m.renderRow(t, id, active, selected[id]))
	}

	box := m.theme.InactiveBox
	if active {
		box = m.theme.ActiveBox
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(t *table.MemoryTable, id string, active, selected bool) string {
	row, _ := t.Row(id)
	marker := "  "
	if selected {
		marker = m.theme.Selected.Render("* ")
	}
	focused := active && id == t.Focused()
	column := -1
	if focused {
		column = m.column
	}
	line := formatCells(marker, row.Values(), column, m.theme)
	if focused {
		return m.theme.Cursor.Render(line)
	}
	return line
}

func formatCells(prefix string, values []string, activeColumn int, theme Theme) string {
	cells := make([]string, len(values))
	for i, v := range values {
		cell := fit(v, columnWidths[i])
		if i == activeColumn {
			cell = theme.ActiveCell.Render(cell)
		}
		cells[i] = cell
	}
	return prefix + strings.Join(cells, " ")
}

// fit pads or truncates s to exactly width runes.
func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.statusKind {
	case statusError:
		return m.theme.StatusError
	case statusSuccess:
		return m.theme.StatusSuccess
	default:
		return m.theme.StatusInfo
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
