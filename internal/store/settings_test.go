package store

import (
	"path/filepath"
	"testing"

	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettingsManager_EmptyPath(t *testing.T) {
	_, err := NewSettingsManager(afero.NewMemMapFs(), "", nil)
	assert.Error(t, err)
}

func TestNewSettingsManager_FirstRunCreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	mock := logging.NewMockLogger()

	s, err := NewSettingsManager(fs, "/deep/nested/settings.json", mock)
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/deep/nested/settings.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"preset_menu": {"presets": [], "selected_preset": ""}}`, string(data))
	assert.Empty(t, s.PresetMenu().Presets)
	assert.Equal(t, "", s.PresetMenu().SelectedPreset)
	assert.True(t, mock.HasEntry("INFO", "No settings file found, created a new one"))
	assert.Equal(t, "/deep/nested", s.Dir())
}

func TestNewSettingsManager_LoadsExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSettings(t, fs, `{"preset_menu": {"presets": ["A", "B"], "selected_preset": "B"}}`)

	s, err := NewSettingsManager(fs, testSettingsPath, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, s.PresetMenu().Presets)
	assert.Equal(t, "B", s.PresetMenu().SelectedPreset)
}

func TestNewSettingsManager_MalformedJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSettings(t, fs, `{"preset_menu": [`)

	_, err := NewSettingsManager(fs, testSettingsPath, nil)
	assert.Error(t, err)
}

func TestNewSettingsManager_ReadOnlyFirstRun(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := NewSettingsManager(fs, testSettingsPath, nil)
	assert.Error(t, err)
}

func TestSettingsManager_SaveKeepsUnknownKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSettings(t, fs, `{"preset_menu": {"presets": ["A"], "selected_preset": "A"}, "window": {"monitor": 1}}`)

	s, err := NewSettingsManager(fs, testSettingsPath, nil)
	require.NoError(t, err)

	s.SetPresetMenu(models.PresetMenu{Presets: []string{"A", "B"}, SelectedPreset: "B"})
	require.NoError(t, s.Save())

	assert.JSONEq(t,
		`{"preset_menu": {"presets": ["A", "B"], "selected_preset": "B"}, "window": {"monitor": 1}}`,
		readSettingsFile(t, fs))
}

func TestSettingsManager_PresetMenuIsACopy(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSettings(t, fs, `{"preset_menu": {"presets": ["A"], "selected_preset": "A"}}`)
	s, err := NewSettingsManager(fs, testSettingsPath, nil)
	require.NoError(t, err)

	menu := s.PresetMenu()
	menu.Presets[0] = "mutated"
	assert.Equal(t, []string{"A"}, s.PresetMenu().Presets)
}

func TestSettingsManager_OnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "settings.json")

	s, err := NewSettingsManager(nil, path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())
	assert.Contains(t, s.String(), path)
}
