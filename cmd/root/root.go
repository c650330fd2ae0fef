// Package root contains the root command for the application
package root

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/csv-presets/internal/config"
	"fjacquet/csv-presets/internal/container"

	"github.com/spf13/cobra"
)

type containerKey struct{}

// Options are the persistent flags shared by every command.
type Options struct {
	SettingsFile string
	LogLevel     string
}

// Cmd is the root command
var Cmd = New()

// New builds a root command without subcommands.
func New() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "csv-presets",
		Short: "Manage presets of CSV bank-statement categorization rules.",
		Long: `csv-presets manages named presets for a CSV bank-statement categorizer.
Each preset stores the input and output CSV paths and two category tables,
income and expense, that decide how statement rows are classified.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("settings") {
				cfg.Data.SettingsFile = opts.SettingsFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = opts.LogLevel
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, containerKey{}, c))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			c, err := ContainerFrom(cmd)
			if err != nil {
				return nil
			}
			return c.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.SettingsFile, "settings", "s", config.DefaultSettingsFile, "Settings file; presets are stored next to it")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

// ContainerFrom returns the container created for the running command.
func ContainerFrom(cmd *cobra.Command) (*container.Container, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command has no context")
	}
	c, ok := ctx.Value(containerKey{}).(*container.Container)
	if !ok || c == nil {
		return nil, fmt.Errorf("command %q ran without the application container", cmd.Name())
	}
	return c, nil
}
