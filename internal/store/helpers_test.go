package store

import (
	"os"
	"syscall"
	"testing"

	"fjacquet/csv-presets/internal/logging"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testSettingsPath = "/data/settings.json"

// flakyFs fails every write once failWrites is set, and only removals once
// failRemove is set.
type flakyFs struct {
	afero.Fs
	failWrites bool
	failRemove bool
}

func (f *flakyFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if f.failWrites && flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE) != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: syscall.ENOSPC}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *flakyFs) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

func (f *flakyFs) Remove(name string) error {
	if f.failWrites || f.failRemove {
		return &os.PathError{Op: "remove", Path: name, Err: syscall.EACCES}
	}
	return f.Fs.Remove(name)
}

func writeSettings(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, testSettingsPath, []byte(content), 0644))
}

func newTestManager(t *testing.T, fs afero.Fs, opts ...Option) *PresetManager {
	t.Helper()
	settings, err := NewSettingsManager(fs, testSettingsPath, logging.NewDiscardLogger())
	require.NoError(t, err)
	m, err := NewPresetManager(settings, logging.NewDiscardLogger(), opts...)
	require.NoError(t, err)
	return m
}

// newManagerWithPresets builds a manager whose settings already list presets.
func newManagerWithPresets(t *testing.T, fs afero.Fs, selected string, presets ...string) *PresetManager {
	t.Helper()
	m := newTestManager(t, fs)
	for _, p := range presets {
		if p == m.SelectedPreset() {
			continue
		}
		require.NoError(t, m.AddPreset(p))
	}
	if indexOf(presets, m.presets[0]) < 0 {
		require.NoError(t, m.DeletePreset(m.presets[0]))
	}
	require.NoError(t, m.OnPresetChange(selected))
	require.Equal(t, presets, m.Presets())
	return m
}

func readSettingsFile(t *testing.T, fs afero.Fs) string {
	t.Helper()
	data, err := afero.ReadFile(fs, testSettingsPath)
	require.NoError(t, err)
	return string(data)
}
