// Package edit starts the interactive preset and category editor
package edit

import (
	"fjacquet/csv-presets/cmd/root"
	"fjacquet/csv-presets/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Cmd represents the edit command
var Cmd = NewCommand()

// NewCommand builds the edit command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit presets, paths and category tables interactively",
		Long: `Open the terminal editor on the selected preset.

Press ? inside the editor for the full list of keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			return tui.Run(tui.Config{
				Presets:     c.GetPresets(),
				Logger:      c.GetLogger(),
				NewCategory: c.GetConfig().NewCategory,
			},
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
		},
	}
}
