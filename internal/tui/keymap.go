package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchTable key.Binding

	// Table actions
	ToggleSelect key.Binding
	AddRow       key.Binding
	DeleteRows   key.Binding
	EditCell     key.Binding
	Save         key.Binding

	// Presets
	NextPreset   key.Binding
	PrevPreset   key.Binding
	AddPreset    key.Binding
	DeletePreset key.Binding
	InputPath    key.Binding
	OutputPath   key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next column"),
		),
		SwitchTable: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch table"),
		),

		ToggleSelect: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "select row"),
		),
		AddRow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add category"),
		),
		DeleteRows: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete selected"),
		),
		EditCell: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("Enter/e", "edit cell"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "w"),
			key.WithHelp("w/Ctrl+S", "save tables"),
		),

		NextPreset: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous preset"),
		),
		AddPreset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new preset"),
		),
		DeletePreset: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete preset"),
		),
		InputPath: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "input path"),
		),
		OutputPath: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "output path"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchTable, k.AddRow, k.DeleteRows, k.EditCell, k.Save, k.NextPreset, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.SwitchTable},
		{k.ToggleSelect, k.AddRow, k.DeleteRows, k.EditCell, k.Save},
		{k.NextPreset, k.PrevPreset, k.AddPreset, k.DeletePreset, k.InputPath, k.OutputPath},
		{k.Help, k.Quit},
	}
}
