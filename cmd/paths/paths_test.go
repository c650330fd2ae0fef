package paths_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/csv-presets/cmd/paths"
	"fjacquet/csv-presets/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()
	cmd := root.New()
	cmd.AddCommand(paths.NewCommand())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--settings", settingsPath, "--log-level", "error", "paths"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPathsCommands(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.json")

	out, err := run(t, settings, "show")
	require.NoError(t, err)
	assert.Equal(t, "input:  \noutput: \n", out)

	_, err = run(t, settings, "set", "--input", "bank.csv", "--output", "sorted.csv")
	require.NoError(t, err)

	_, err = run(t, settings, "set", "-o", "other.csv")
	require.NoError(t, err)

	out, err = run(t, settings, "show")
	require.NoError(t, err)
	assert.Equal(t, "input:  bank.csv\noutput: other.csv\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "Default Preset.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"paths": {"input_path": "bank.csv", "output_path": "other.csv"}}`, string(data))
}

func TestPathsSet_RequiresAFlag(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "settings.json"), "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to set")
}
