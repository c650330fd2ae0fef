// Package store owns the persisted state of the preset editor: the global
// settings document (SettingsManager) and the per-preset documents
// (PresetManager). Both are single-threaded and synchronous; every mutation
// is written through to disk before the call returns.
package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"fjacquet/csv-presets/internal/fileutils"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"

	"github.com/spf13/afero"
)

// SettingsManager handles loading, saving and creating the settings document.
type SettingsManager struct {
	fs     afero.Fs
	path   string
	data   models.SettingsDocument
	logger logging.Logger
}

// NewSettingsManager creates the manager and loads the settings document,
// creating it with an empty preset menu on first run.
func NewSettingsManager(fs afero.Fs, settingsPath string, logger logging.Logger) (*SettingsManager, error) {
	if settingsPath == "" {
		return nil, errors.New("settings path cannot be empty")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	s := &SettingsManager{
		fs:     fs,
		path:   settingsPath,
		logger: logger.WithField(logging.FieldFile, settingsPath),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the settings file into memory. A missing file is created first.
func (s *SettingsManager) Load() error {
	if !fileutils.FileExists(s.fs, s.path) {
		if err := s.create(); err != nil {
			return err
		}
	}

	var doc models.SettingsDocument
	if err := fileutils.ReadJSON(s.fs, s.path, &doc); err != nil {
		return fmt.Errorf("error loading settings: %w", err)
	}
	s.data = doc
	s.logger.Debug("Loaded settings",
		logging.F(logging.FieldPresets, doc.PresetMenu.Presets),
		logging.F(logging.FieldSelected, doc.PresetMenu.SelectedPreset))
	return nil
}

func (s *SettingsManager) create() error {
	if err := fileutils.EnsureDirectory(s.fs, s.path); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}
	if err := fileutils.WriteJSON(s.fs, s.path, models.NewSettingsDocument()); err != nil {
		return fmt.Errorf("error creating settings file: %w", err)
	}
	s.logger.Info("No settings file found, created a new one")
	return nil
}

// Save writes the in-memory settings document to disk.
func (s *SettingsManager) Save() error {
	if err := fileutils.WriteJSON(s.fs, s.path, s.data); err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}
	s.logger.Debug("Saved settings")
	return nil
}

// Path returns the settings file path.
func (s *SettingsManager) Path() string {
	return s.path
}

// Dir returns the directory holding the settings file and the preset files.
func (s *SettingsManager) Dir() string {
	return filepath.Dir(s.path)
}

// Fs returns the filesystem the settings live on.
func (s *SettingsManager) Fs() afero.Fs {
	return s.fs
}

// PresetMenu returns a copy of the preset menu.
func (s *SettingsManager) PresetMenu() models.PresetMenu {
	menu := s.data.PresetMenu
	menu.Presets = append([]string{}, menu.Presets...)
	return menu
}

// SetPresetMenu replaces the preset menu in memory. Call Save to persist it.
func (s *SettingsManager) SetPresetMenu(menu models.PresetMenu) {
	menu.Presets = append([]string{}, menu.Presets...)
	s.data.PresetMenu = menu
}

// String summarizes the manager for debug logging.
func (s *SettingsManager) String() string {
	return fmt.Sprintf("SettingsManager{path=%s, presets=%v, selected=%q}",
		s.path, s.data.PresetMenu.Presets, s.data.PresetMenu.SelectedPreset)
}
