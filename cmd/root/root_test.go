package root_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"fjacquet/csv-presets/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "csv-presets", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "presets of CSV bank-statement categorization rules")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := root.New()

	settingsFlag := cmd.PersistentFlags().Lookup("settings")
	require.NotNil(t, settingsFlag)
	assert.Equal(t, "s", settingsFlag.Shorthand)
	assert.Equal(t, "./data/settings.json", settingsFlag.DefValue)

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Equal(t, "info", logLevelFlag.DefValue)
}

func TestRootCommand_ProvidesContainer(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.json")

	var selected string
	cmd := root.New()
	cmd.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.ContainerFrom(cmd)
			if err != nil {
				return err
			}
			selected = c.GetPresets().SelectedPreset()
			return nil
		},
	})
	cmd.SetArgs([]string{"--settings", settings, "--log-level", "error", "probe"})
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Default Preset", selected)
	assert.FileExists(t, filepath.Join(dir, "Default Preset.json"))
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	cmd := root.New()
	cmd.AddCommand(&cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }})
	cmd.SetArgs([]string{"--settings", filepath.Join(t.TempDir(), "s.json"), "--log-level", "loud", "probe"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	// an unknown level falls back to info rather than failing
	assert.NoError(t, cmd.Execute())
}

func TestContainerFrom_WithoutContainer(t *testing.T) {
	_, err := root.ContainerFrom(&cobra.Command{Use: "bare"})
	assert.Error(t, err)
}
