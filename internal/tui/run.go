package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the editor on the alternate screen and blocks until it quits.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	m := New(cfg)
	defer m.Close()

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Dirty() {
		m.logger.Warn("Editor closed with unsaved category edits")
	}
	return nil
}
