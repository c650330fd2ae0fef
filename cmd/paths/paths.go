// Package paths handles the input and output path commands of the selected preset
package paths

import (
	"errors"
	"fmt"

	"fjacquet/csv-presets/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the paths command
var Cmd = NewCommand()

// NewCommand builds the paths command and its subcommands.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show or set the CSV input and output paths of the selected preset",
	}
	cmd.AddCommand(newShowCmd(), newSetCmd())
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the input and output paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			p := c.GetPresets().Paths()
			fmt.Fprintf(cmd.OutOrStdout(), "input:  %s\noutput: %s\n", p.InputPath, p.OutputPath)
			return nil
		},
	}
}

func newSetCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the input and/or output path; the other one is kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") && !cmd.Flags().Changed("output") {
				return errors.New("nothing to set: pass --input and/or --output")
			}
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			presets := c.GetPresets()
			p := presets.Paths()
			if cmd.Flags().Changed("input") {
				p.InputPath = input
			}
			if cmd.Flags().Changed("output") {
				p.OutputPath = output
			}
			if err := presets.SetPaths(p.InputPath, p.OutputPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved paths of preset %s\n", presets.SelectedPreset())
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "CSV input path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV output path")
	return cmd
}
