// Package tui implements the terminal editor for presets and category tables.
package tui

import (
	"errors"
	"fmt"

	"fjacquet/csv-presets/internal/apperrors"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"
	"fjacquet/csv-presets/internal/store"
	"fjacquet/csv-presets/internal/table"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PresetStore is the part of store.PresetManager the editor drives.
type PresetStore interface {
	table.CategoryStore
	Presets() []string
	SelectedPreset() string
	Document() models.PresetDocument
	SetPaths(inputPath, outputPath string) error
	OnPresetChange(name string) error
	AddPreset(name string) error
	DeletePreset(name string) error
	Subscribe(fn func(store.Event)) func()
}

// Mode is what keystrokes currently act on.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEditCell
	ModePresetName
	ModeInputPath
	ModeOutputPath
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// Config holds the editor's dependencies.
type Config struct {
	Presets     PresetStore
	Logger      logging.Logger
	NewCategory func() models.Category
	// Theme defaults to DefaultTheme.
	Theme *Theme
}

// session is shared by every copy of the Model. Preset notifications write
// into it from inside store calls.
type session struct {
	presets  []string
	selected string
	paths    models.Paths
	dirty    bool
}

// Model holds the editor state.
type Model struct {
	store       PresetStore
	logger      logging.Logger
	newCategory func() models.Category
	theme       Theme
	keymap      KeyMap
	help        help.Model
	input       textinput.Model

	session     *session
	tables      [2]*table.MemoryTable
	unsubscribe func()

	active int
	column int
	mode   Mode

	status     string
	statusKind statusKind
	width      int
	height     int
	quitting   bool
}

// New creates the editor model and subscribes it to preset changes. Call
// Close when done with it.
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = logging.NewDiscardLogger()
	}
	if cfg.NewCategory == nil {
		cfg.NewCategory = models.NewDefaultCategory
	}
	theme := DefaultTheme
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}

	input := textinput.New()
	input.CharLimit = 512

	m := Model{
		store:       cfg.Presets,
		logger:      cfg.Logger,
		newCategory: cfg.NewCategory,
		theme:       theme,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		input:       input,
		session:     &session{},
		tables: [2]*table.MemoryTable{
			table.NewMemoryTable(string(models.KindInput)),
			table.NewMemoryTable(string(models.KindOutput)),
		},
	}

	s, tables := m.session, m.tables
	m.unsubscribe = cfg.Presets.Subscribe(func(e store.Event) {
		s.presets = e.Presets
		s.selected = e.Selected
		if e.Kind == store.EventSelectionChanged {
			s.paths = e.Document.Paths
			s.dirty = false
			table.LoadAll(e.Document, tables[0], tables[1])
			focusFirst(tables[0])
			focusFirst(tables[1])
		}
	})

	doc := cfg.Presets.Document()
	m.session.presets = cfg.Presets.Presets()
	m.session.selected = cfg.Presets.SelectedPreset()
	m.session.paths = doc.Paths
	table.LoadAll(doc, m.tables[0], m.tables[1])
	focusFirst(m.tables[0])
	focusFirst(m.tables[1])
	return m
}

// Close removes the preset subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != ModeBrowse {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.activeTable()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		moveFocus(t, t.Prev)

	case key.Matches(msg, m.keymap.Down):
		moveFocus(t, t.Next)

	case key.Matches(msg, m.keymap.Left):
		if m.column > 0 {
			m.column--
		}

	case key.Matches(msg, m.keymap.Right):
		if m.column < len(models.CategoryColumns)-1 {
			m.column++
		}

	case key.Matches(msg, m.keymap.SwitchTable):
		m.active = 1 - m.active

	case key.Matches(msg, m.keymap.ToggleSelect):
		m.toggleSelection()

	case key.Matches(msg, m.keymap.AddRow):
		id := table.InsertCategory(t, m.newCategory())
		t.Focus(id)
		m.session.dirty = true
		m.setStatus(statusInfo, "Added category to %s table", t.Name())

	case key.Matches(msg, m.keymap.DeleteRows):
		m.deleteSelected()

	case key.Matches(msg, m.keymap.EditCell):
		if row, ok := t.Row(t.Focused()); ok {
			m.openPrompt(ModeEditCell, models.CategoryColumns[m.column], row.Values()[m.column])
		}

	case key.Matches(msg, m.keymap.Save):
		m.save()

	case key.Matches(msg, m.keymap.NextPreset):
		m.stepPreset(1)

	case key.Matches(msg, m.keymap.PrevPreset):
		m.stepPreset(-1)

	case key.Matches(msg, m.keymap.AddPreset):
		m.openPrompt(ModePresetName, "new preset", "")

	case key.Matches(msg, m.keymap.DeletePreset):
		name, discarded := m.session.selected, m.session.dirty
		if m.report(m.store.DeletePreset(name)) {
			m.setStatus(statusSuccess, "Deleted preset %s%s", name, discardNote(discarded))
		}

	case key.Matches(msg, m.keymap.InputPath):
		m.openPrompt(ModeInputPath, "input path", m.session.paths.InputPath)

	case key.Matches(msg, m.keymap.OutputPath):
		m.openPrompt(ModeOutputPath, "output path", m.session.paths.OutputPath)
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keymap.Confirm):
		value := m.input.Value()
		mode := m.mode
		m.closePrompt()
		m.commitPrompt(mode, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitPrompt(mode Mode, value string) {
	switch mode {
	case ModeEditCell:
		t := m.activeTable()
		id := t.Focused()
		row, ok := t.Row(id)
		if !ok {
			return
		}
		setCell(&row, m.column, value)
		t.Update(id, row)
		m.session.dirty = true

	case ModePresetName:
		discarded := m.session.dirty
		if m.report(m.store.AddPreset(value)) {
			m.setStatus(statusSuccess, "Added preset %s%s", m.session.selected, discardNote(discarded))
		}

	case ModeInputPath, ModeOutputPath:
		paths := m.session.paths
		if mode == ModeInputPath {
			paths.InputPath = value
		} else {
			paths.OutputPath = value
		}
		if m.report(m.store.SetPaths(paths.InputPath, paths.OutputPath)) {
			m.session.paths = paths
			m.setStatus(statusSuccess, "Saved input and output paths")
		}
	}
}

func (m *Model) toggleSelection() {
	t := m.activeTable()
	id := t.Focused()
	if id == "" {
		return
	}
	var selection []string
	found := false
	for _, s := range t.Selection() {
		if s == id {
			found = true
			continue
		}
		selection = append(selection, s)
	}
	if !found {
		selection = append(selection, id)
	}
	t.SetSelection(selection...)
}

func (m *Model) deleteSelected() {
	t := m.activeTable()
	_, err := table.DeleteSelected(t)
	if errors.Is(err, apperrors.ErrNothingSelected) {
		m.setStatus(statusInfo, "Select a category first to delete it")
		return
	}
	if t.Focused() == "" {
		focusFirst(t)
	}
	m.session.dirty = true
	m.setStatus(statusInfo, "Deleted selected categories")
}

func (m *Model) save() {
	if m.report(table.SaveAll(m.store, m.tables[0], m.tables[1])) {
		m.session.dirty = false
		m.setStatus(statusSuccess, "Saved categories to %s", m.session.selected)
	}
}

func (m *Model) stepPreset(delta int) {
	presets := m.session.presets
	if len(presets) < 2 {
		return
	}
	idx := 0
	for i, p := range presets {
		if p == m.session.selected {
			idx = i
		}
	}
	next := presets[(idx+delta+len(presets))%len(presets)]
	discarded := m.session.dirty
	if m.report(m.store.OnPresetChange(next)) {
		m.setStatus(statusInfo, "Switched to %s%s", next, discardNote(discarded))
	}
}

// report shows err in the status line and logs it. It returns true for nil.
func (m *Model) report(err error) bool {
	if err == nil {
		return true
	}
	if apperrors.IsValidation(err) {
		m.logger.Warn("Editor action rejected", logging.F(logging.FieldError, err.Error()))
	} else {
		m.logger.Error("Editor action failed", logging.F(logging.FieldError, err.Error()))
	}
	m.setStatus(statusError, "%v", err)
	return false
}

func (m *Model) setStatus(kind statusKind, format string, args ...interface{}) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

func (m *Model) openPrompt(mode Mode, placeholder, value string) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) closePrompt() {
	m.mode = ModeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m Model) activeTable() *table.MemoryTable {
	return m.tables[m.active]
}

// Tables returns the input and output tables.
func (m Model) Tables() (*table.MemoryTable, *table.MemoryTable) {
	return m.tables[0], m.tables[1]
}

// Mode returns the current input mode.
func (m Model) Mode() Mode { return m.mode }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Selected returns the selected preset as last notified.
func (m Model) Selected() string { return m.session.selected }

// Dirty reports unsaved table edits.
func (m Model) Dirty() bool { return m.session.dirty }

// discardNote is appended to the status of actions that reload the tables.
func discardNote(discarded bool) string {
	if discarded {
		return ", unsaved edits were discarded"
	}
	return ""
}

func moveFocus(t *table.MemoryTable, step func(string) string) {
	if t.Focused() == "" {
		focusFirst(t)
		return
	}
	if id := step(t.Focused()); id != "" {
		t.Focus(id)
	}
}

func focusFirst(t *table.MemoryTable) {
	if id, ok := t.At(0); ok {
		t.Focus(id)
	}
}

func setCell(row *models.CategoryRow, column int, value string) {
	switch column {
	case 0:
		row.Name = value
	case 1:
		row.Filters = value
	case 2:
		row.DateFrom = value
	case 3:
		row.DateTo = value
	case 4:
		row.MinValue = value
	case 5:
		row.MaxValue = value
	}
}
