package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style of the editor.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Header        lipgloss.Style
	Cursor        lipgloss.Style
	ActiveCell    lipgloss.Style
	Selected      lipgloss.Style
	PresetActive  lipgloss.Style
	PresetOther   lipgloss.Style
	ActiveBox     lipgloss.Style
	InactiveBox   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
}

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a78bfa")),
	Cursor: lipgloss.NewStyle().
		Background(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#fafafa")),
	ActiveCell: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
	PresetActive: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1),
	PresetOther: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Padding(0, 1),
	ActiveBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(0, 1),
	InactiveBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
}
