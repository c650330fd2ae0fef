package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/csv-presets/internal/apperrors"
	"fjacquet/csv-presets/internal/fileutils"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"

	"github.com/spf13/afero"
)

// PresetManager handles creating, loading, switching, adding and deleting
// presets. It keeps the settings document (through a SettingsManager) and the
// selected preset's file consistent with its in-memory state.
type PresetManager struct {
	settings      *SettingsManager
	fs            afero.Fs
	logger        logging.Logger
	defaultPreset string

	presets   []string
	selected  string
	presetDir string
	document  models.PresetDocument

	subscribers []subscription
	nextSubID   int
}

// Option configures a PresetManager.
type Option func(*PresetManager)

// WithDefaultPreset sets the name seeded when the settings carry no presets.
func WithDefaultPreset(name string) Option {
	return func(m *PresetManager) {
		if name = NormalizePresetName(name); name != "" {
			m.defaultPreset = name
		}
	}
}

// NewPresetManager resolves the preset list and selection from the settings
// document, makes sure the selected preset has a file and loads it.
func NewPresetManager(settings *SettingsManager, logger logging.Logger, opts ...Option) (*PresetManager, error) {
	if settings == nil {
		return nil, errors.New("settings manager cannot be nil")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	m := &PresetManager{
		settings:      settings,
		fs:            settings.Fs(),
		logger:        logger,
		defaultPreset: models.DefaultPresetName,
		presetDir:     settings.Dir(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := ValidatePresetName(m.defaultPreset); err != nil {
		return nil, fmt.Errorf("invalid default preset: %w", err)
	}

	menu := settings.PresetMenu()
	m.presets = m.usableNames(menu.Presets)
	if len(m.presets) == 0 {
		m.presets = []string{m.defaultPreset}
	}

	m.selected = menu.SelectedPreset
	if m.selected == "" || indexOf(m.presets, m.selected) < 0 {
		m.selected = m.presets[0]
	}

	// Persist whenever the resolved menu differs from the file, so the
	// settings document always names a concrete selection after first run.
	if m.selected != menu.SelectedPreset || !equalNames(m.presets, menu.Presets) {
		if err := m.PersistSelection(); err != nil {
			return nil, err
		}
		m.logger.Info("Saved default preset selection", logging.F(logging.FieldSelected, m.selected))
	}

	if err := m.ensurePresetFile(m.selected); err != nil {
		return nil, err
	}
	if err := m.loadSelected(); err != nil {
		return nil, err
	}

	m.logger.Debug(m.String())
	return m, nil
}

// PresetPath returns the file of the named preset, or of the selected one when
// name is empty. Separators are always forward slashes.
func (m *PresetManager) PresetPath(name string) string {
	if name == "" {
		name = m.selected
	}
	return filepath.ToSlash(filepath.Join(m.presetDir, name+models.PresetFileExtension))
}

// Presets returns a copy of the known preset names in order.
func (m *PresetManager) Presets() []string {
	return append([]string{}, m.presets...)
}

// SelectedPreset returns the currently selected preset name.
func (m *PresetManager) SelectedPreset() string {
	return m.selected
}

// Document returns a copy of the selected preset's document.
func (m *PresetManager) Document() models.PresetDocument {
	return m.document.Clone()
}

// ReadPreset loads the document of any known preset without selecting it.
func (m *PresetManager) ReadPreset(name string) (models.PresetDocument, error) {
	if name == "" || name == m.selected {
		return m.Document(), nil
	}
	if indexOf(m.presets, name) < 0 {
		return models.PresetDocument{}, apperrors.NewValidationError("read preset", name, apperrors.ErrUnknownPreset)
	}
	var doc models.PresetDocument
	if err := fileutils.ReadJSON(m.fs, m.PresetPath(name), &doc); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DefaultPresetDocument(), nil
		}
		return models.PresetDocument{}, fmt.Errorf("error loading preset '%s': %w", name, err)
	}
	return doc, nil
}

// Paths returns the input and output paths of the selected preset.
func (m *PresetManager) Paths() models.Paths {
	return m.document.Paths
}

// SetPaths stores the paths of the selected preset. Only the "paths" key of
// the preset file is rewritten; categories on disk are left alone.
func (m *PresetManager) SetPaths(inputPath, outputPath string) error {
	paths := models.Paths{InputPath: inputPath, OutputPath: outputPath}
	partial := map[string]interface{}{models.KeyPaths: paths}

	if _, err := fileutils.MergeWriteJSON(m.fs, m.PresetPath(""), partial); err != nil {
		return fmt.Errorf("error saving paths: %w", err)
	}
	m.document.Paths = paths
	m.logger.Info("Saved input and output paths",
		logging.F(logging.FieldPreset, m.selected),
		logging.F(logging.FieldInputPath, inputPath),
		logging.F(logging.FieldOutputPath, outputPath))
	return nil
}

// SaveCategories merge-writes one category list into the selected preset's
// file without touching its paths or the other list.
func (m *PresetManager) SaveCategories(kind models.CategoryKind, categories []models.Category) error {
	if categories == nil {
		categories = []models.Category{}
	}
	partial := map[string]interface{}{kind.DocumentKey(): categories}

	if _, err := fileutils.MergeWriteJSON(m.fs, m.PresetPath(""), partial); err != nil {
		return fmt.Errorf("error saving %s categories: %w", kind, err)
	}
	m.document.SetCategories(kind, append([]models.Category{}, categories...))
	m.logger.Info("Saved categories",
		logging.F(logging.FieldPreset, m.selected),
		logging.F(logging.FieldTable, string(kind)),
		logging.F(logging.FieldCount, len(categories)))
	return nil
}

// PersistSelection writes the preset list and the selection into the
// settings document. It fails with apperrors.ErrUnknownPreset when the
// selection is not a known preset.
func (m *PresetManager) PersistSelection() error {
	if indexOf(m.presets, m.selected) < 0 {
		err := apperrors.NewValidationError("persist selection", m.selected, apperrors.ErrUnknownPreset)
		m.logger.Error(err.Error())
		return err
	}

	previous := m.settings.PresetMenu()
	m.settings.SetPresetMenu(models.PresetMenu{
		Presets:        m.presets,
		SelectedPreset: m.selected,
	})
	if err := m.settings.Save(); err != nil {
		m.settings.SetPresetMenu(previous)
		return err
	}
	m.logger.Debug("Saved presets and selected preset to settings",
		logging.F(logging.FieldPresets, m.presets),
		logging.F(logging.FieldSelected, m.selected))
	return nil
}

// OnPresetChange switches the selection to name, persists it, reloads that
// preset's document and notifies subscribers. An unknown name is rejected
// before any state changes.
func (m *PresetManager) OnPresetChange(name string) error {
	if indexOf(m.presets, name) < 0 {
		err := apperrors.NewValidationError("change preset", name, apperrors.ErrUnknownPreset)
		m.logger.Warn(err.Error())
		return err
	}

	previous := m.selected
	m.selected = name
	if err := m.PersistSelection(); err != nil {
		m.selected = previous
		return err
	}
	if err := m.loadSelected(); err != nil {
		return err
	}

	m.logger.Info("Current preset changed", logging.F(logging.FieldPreset, name))
	m.notify(EventSelectionChanged)
	return nil
}

// Reload re-reads the selected preset's file and notifies subscribers.
func (m *PresetManager) Reload() error {
	if err := m.loadSelected(); err != nil {
		return err
	}
	m.notify(EventSelectionChanged)
	return nil
}

// AddPreset registers a new preset with a default file and selects it.
func (m *PresetManager) AddPreset(name string) error {
	const op = "add preset"
	name = NormalizePresetName(name)

	if err := ValidatePresetName(name); err != nil {
		m.logger.Warn("Rejected preset name", logging.F(logging.FieldPreset, name), logging.F(logging.FieldError, err.Error()))
		return apperrors.NewValidationError(op, name, err)
	}
	if indexOf(m.presets, name) >= 0 {
		m.logger.Warn("Preset already exists", logging.F(logging.FieldPreset, name))
		return apperrors.NewValidationError(op, name, apperrors.ErrPresetExists)
	}

	if err := m.ensurePresetFile(name); err != nil {
		return err
	}
	m.presets = append(m.presets, name)
	if err := m.PersistSelection(); err != nil {
		m.presets = m.presets[:len(m.presets)-1]
		return err
	}
	m.logger.Info("Added preset", logging.F(logging.FieldPreset, name))

	m.notify(EventPresetsChanged)
	return m.OnPresetChange(name)
}

// DeletePreset removes a preset and its file. Deleting the selected preset
// moves the selection to the next preset in list order, wrapping to the first.
func (m *PresetManager) DeletePreset(name string) error {
	const op = "delete preset"
	name = NormalizePresetName(name)

	if name == "" {
		m.logger.Warn("Preset name can't be empty")
		return apperrors.NewValidationError(op, "", apperrors.ErrEmptyName)
	}
	if len(m.presets) == 1 {
		m.logger.Warn("Can't delete last preset in the list", logging.F(logging.FieldPreset, name))
		return apperrors.NewValidationError(op, name, apperrors.ErrLastPreset)
	}
	idx := indexOf(m.presets, name)
	if idx < 0 {
		m.logger.Warn("Preset doesn't exist", logging.F(logging.FieldPreset, name))
		return apperrors.NewValidationError(op, name, apperrors.ErrPresetNotFound)
	}

	previousPresets, previousSelected := m.Presets(), m.selected
	if m.selected == name {
		m.selected = m.presets[(idx+1)%len(m.presets)]
	}
	m.presets = append(m.presets[:idx:idx], m.presets[idx+1:]...)

	if err := m.PersistSelection(); err != nil {
		m.presets, m.selected = previousPresets, previousSelected
		return err
	}

	var removeErr error
	if err := fileutils.RemoveFile(m.fs, m.PresetPath(name)); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			// the preset is gone from the list; the successor still has to be loaded
			removeErr = fmt.Errorf("error deleting preset file: %w", err)
			m.logger.Error("Could not delete preset file",
				logging.F(logging.FieldFile, m.PresetPath(name)),
				logging.F(logging.FieldError, err.Error()))
		} else {
			m.logger.Warn("Preset file was already gone", logging.F(logging.FieldFile, m.PresetPath(name)))
		}
	}
	m.logger.Info("Deleted preset", logging.F(logging.FieldPreset, name))

	m.notify(EventPresetsChanged)
	return errors.Join(removeErr, m.OnPresetChange(m.selected))
}

// RenamePreset renames a preset and moves its file, keeping its position in
// the list and, if it was selected, the selection.
func (m *PresetManager) RenamePreset(oldName, newName string) error {
	const op = "rename preset"
	oldName, newName = NormalizePresetName(oldName), NormalizePresetName(newName)

	if oldName == "" {
		return apperrors.NewValidationError(op, "", apperrors.ErrEmptyName)
	}
	idx := indexOf(m.presets, oldName)
	if idx < 0 {
		return apperrors.NewValidationError(op, oldName, apperrors.ErrPresetNotFound)
	}
	if err := ValidatePresetName(newName); err != nil {
		return apperrors.NewValidationError(op, newName, err)
	}
	if indexOf(m.presets, newName) >= 0 {
		return apperrors.NewValidationError(op, newName, apperrors.ErrPresetExists)
	}

	oldPath, newPath := m.PresetPath(oldName), m.PresetPath(newName)
	if fileutils.FileExists(m.fs, oldPath) {
		if err := fileutils.RenameFile(m.fs, oldPath, newPath); err != nil {
			return fmt.Errorf("error renaming preset file: %w", err)
		}
	} else if err := m.ensurePresetFile(newName); err != nil {
		return err
	}

	wasSelected := m.selected == oldName
	m.presets[idx] = newName
	if wasSelected {
		m.selected = newName
	}
	if err := m.PersistSelection(); err != nil {
		m.presets[idx] = oldName
		if wasSelected {
			m.selected = oldName
		}
		if fileutils.FileExists(m.fs, newPath) {
			_ = fileutils.RenameFile(m.fs, newPath, oldPath)
		}
		return err
	}
	m.logger.Info("Renamed preset", logging.F(logging.FieldPreset, newName), logging.F("previous", oldName))

	m.notify(EventPresetsChanged)
	if wasSelected {
		return m.OnPresetChange(newName)
	}
	return nil
}

// Subscribe registers fn for change notifications and returns a function
// that removes the subscription. Subscribers run synchronously in
// registration order.
func (m *PresetManager) Subscribe(fn func(Event)) func() {
	m.nextSubID++
	id := m.nextSubID
	m.subscribers = append(m.subscribers, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range m.subscribers {
			if sub.id == id {
				m.subscribers = append(m.subscribers[:i:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// String summarizes the manager for debug logging.
func (m *PresetManager) String() string {
	return fmt.Sprintf("PresetManager{presets=%v, selected=%q, path=%s, settings=%s}",
		m.presets, m.selected, m.PresetPath(""), m.settings.Path())
}

func (m *PresetManager) notify(kind EventKind) {
	if len(m.subscribers) == 0 {
		return
	}
	event := Event{
		Kind:     kind,
		Selected: m.selected,
		Presets:  m.Presets(),
		Document: m.Document(),
	}
	for _, sub := range append([]subscription{}, m.subscribers...) {
		sub.fn(event)
	}
}

// ensurePresetFile writes the default document for name if it has no file.
func (m *PresetManager) ensurePresetFile(name string) error {
	path := m.PresetPath(name)
	if fileutils.FileExists(m.fs, path) {
		return nil
	}
	if err := fileutils.WriteJSON(m.fs, path, models.DefaultPresetDocument()); err != nil {
		return fmt.Errorf("error creating preset file: %w", err)
	}
	m.logger.Info("No preset config found, saved a default config", logging.F(logging.FieldFile, path))
	return nil
}

// loadSelected reads the selected preset's file, creating it when missing.
func (m *PresetManager) loadSelected() error {
	if err := m.ensurePresetFile(m.selected); err != nil {
		return err
	}
	var doc models.PresetDocument
	if err := fileutils.ReadJSON(m.fs, m.PresetPath(""), &doc); err != nil {
		return fmt.Errorf("error loading preset '%s': %w", m.selected, err)
	}
	m.document = doc
	m.logger.Debug("Loaded preset data", logging.F(logging.FieldPreset, m.selected))
	return nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// usableNames drops duplicates and names that are not valid file stems, so a
// hand-edited settings file cannot point outside the preset directory.
func (m *PresetManager) usableNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || indexOf(out, n) >= 0 {
			continue
		}
		if err := ValidatePresetName(n); err != nil {
			m.logger.Warn("Ignoring invalid preset name in settings",
				logging.F(logging.FieldPreset, n),
				logging.F(logging.FieldError, err.Error()))
			continue
		}
		out = append(out, n)
	}
	return out
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
