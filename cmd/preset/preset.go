// Package preset handles the preset management commands
package preset

import (
	"fmt"

	"fjacquet/csv-presets/cmd/root"
	"fjacquet/csv-presets/internal/export"

	"github.com/spf13/cobra"
)

// Cmd represents the preset command
var Cmd = NewCommand()

// NewCommand builds the preset command and its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "List, show, add, delete, select and rename presets",
	}
	cmd.AddCommand(newListCmd(), newShowCmd(), newAddCmd(), newDeleteCmd(), newSelectCmd(), newRenameCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets; the selected one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			presets := c.GetPresets()
			for _, name := range presets.Presets() {
				marker := " "
				if name == presets.SelectedPreset() {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show [NAME]",
		Short: "Print a preset (default: the selected one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			presets := c.GetPresets()
			name := presets.SelectedPreset()
			if len(args) == 1 {
				name = args[0]
			}
			doc, err := presets.ReadPreset(name)
			if err != nil {
				return err
			}
			data, err := export.MarshalPreset(export.PresetView{
				Name:     name,
				Selected: name == presets.SelectedPreset(),
				Document: doc,
			}, export.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(export.FormatJSON), "Output format (json or yaml)")
	return cmd
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a preset with empty paths and select it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			presets := c.GetPresets()
			if err := presets.AddPreset(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added preset %s\n", presets.SelectedPreset())
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a preset and its file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			presets := c.GetPresets()
			if err := presets.DeletePreset(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s, selected %s\n", args[0], presets.SelectedPreset())
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select NAME",
		Short: "Select a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			if err := c.GetPresets().OnPresetChange(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected preset %s\n", args[0])
			return nil
		},
	}
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a preset and its file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			if err := c.GetPresets().RenamePreset(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed preset %s to %s\n", args[0], args[1])
			return nil
		},
	}
}
