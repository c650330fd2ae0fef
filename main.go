package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"fjacquet/csv-presets/cmd/category"
	"fjacquet/csv-presets/cmd/edit"
	"fjacquet/csv-presets/cmd/paths"
	"fjacquet/csv-presets/cmd/preset"
	"fjacquet/csv-presets/cmd/root"
	"fjacquet/csv-presets/internal/config"
	"fjacquet/csv-presets/internal/logging"
)

func init() {
	// .env must be loaded before viper reads CSVPRESETS_* variables
	config.LoadEnv(logging.NewLogrusAdapter("warn", "text", os.Stderr))

	root.Cmd.AddCommand(preset.Cmd)
	root.Cmd.AddCommand(paths.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.Cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
