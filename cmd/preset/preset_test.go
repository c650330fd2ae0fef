package preset_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/csv-presets/cmd/preset"
	"fjacquet/csv-presets/cmd/root"
	"fjacquet/csv-presets/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the preset command against settingsPath and returns stdout.
func run(t *testing.T, settingsPath string, args ...string) (string, error) {
	t.Helper()
	cmd := root.New()
	cmd.AddCommand(preset.NewCommand())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--settings", settingsPath, "--log-level", "error", "preset"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPresetCommand_Metadata(t *testing.T) {
	assert.Equal(t, "preset", preset.Cmd.Use)
	names := []string{}
	for _, sub := range preset.Cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"list", "show", "add", "delete", "select", "rename"}, names)
}

func TestPresetCommands(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.json")

	out, err := run(t, settings, "list")
	require.NoError(t, err)
	assert.Equal(t, "* Default Preset\n", out)

	out, err = run(t, settings, "add", "Q1")
	require.NoError(t, err)
	assert.Equal(t, "Added preset Q1\n", out)
	assert.FileExists(t, filepath.Join(dir, "Q1.json"))

	out, err = run(t, settings, "list")
	require.NoError(t, err)
	assert.Equal(t, "  Default Preset\n* Q1\n", out)

	_, err = run(t, settings, "select", "Default Preset")
	require.NoError(t, err)

	_, err = run(t, settings, "rename", "Q1", "Quarter 1")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Quarter 1.json"))

	out, err = run(t, settings, "delete", "Default Preset")
	require.NoError(t, err)
	assert.Equal(t, "Deleted preset Default Preset, selected Quarter 1\n", out)

	data, err := os.ReadFile(settings)
	require.NoError(t, err)
	assert.JSONEq(t, `{"preset_menu": {"presets": ["Quarter 1"], "selected_preset": "Quarter 1"}}`, string(data))
}

func TestPresetCommands_Errors(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.json")

	_, err := run(t, settings, "delete", "Default Preset")
	assert.True(t, errors.Is(err, apperrors.ErrLastPreset))

	_, err = run(t, settings, "add", "Default Preset")
	assert.True(t, errors.Is(err, apperrors.ErrPresetExists))

	_, err = run(t, settings, "select", "nope")
	assert.True(t, errors.Is(err, apperrors.ErrUnknownPreset))

	_, err = run(t, settings, "add", "a:b")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidName))

	_, err = run(t, settings, "add")
	assert.Error(t, err)
}

func TestPresetShow(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.json")
	_, err := run(t, settings, "add", "Q1")
	require.NoError(t, err)

	out, err := run(t, settings, "show")
	require.NoError(t, err)
	var view struct {
		Preset   string `json:"preset"`
		Selected bool   `json:"selected"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "Q1", view.Preset)
	assert.True(t, view.Selected)

	out, err = run(t, settings, "show", "Default Preset", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "preset: Default Preset")
	assert.Contains(t, out, "selected: false")

	_, err = run(t, settings, "show", "-o", "xml")
	assert.Error(t, err)
}
