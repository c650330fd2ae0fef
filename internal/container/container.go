// Package container provides dependency injection for the csv-presets application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/csv-presets/internal/config"
	"fjacquet/csv-presets/internal/fileutils"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"
	"fjacquet/csv-presets/internal/store"
	"fjacquet/csv-presets/internal/table"

	"github.com/spf13/afero"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	logCloser io.Closer
	config    *config.Config
	fs        afero.Fs
	settings  *store.SettingsManager
	presets   *store.PresetManager
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

type options struct {
	fs     afero.Fs
	logger logging.Logger
}

// WithFs replaces the operating system filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewContainer creates and wires all application dependencies: the logger,
// the filesystem, the settings store and the preset store on top of it.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	var logCloser io.Closer
	if logger == nil {
		var err error
		logger, logCloser, err = config.ConfigureLoggingFromConfig(cfg)
		if err != nil {
			return nil, err
		}
	}
	fileutils.SetLogger(logger)

	fs := o.fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	settings, err := store.NewSettingsManager(fs, cfg.Data.SettingsFile, logger)
	if err != nil {
		closeLog(logCloser)
		return nil, fmt.Errorf("error loading settings: %w", err)
	}

	presets, err := store.NewPresetManager(settings, logger, store.WithDefaultPreset(cfg.Data.DefaultPreset))
	if err != nil {
		closeLog(logCloser)
		return nil, fmt.Errorf("error loading presets: %w", err)
	}

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, settings.Path()),
		logging.F(logging.FieldSelected, presets.SelectedPreset()))

	return &Container{
		logger:    logger,
		logCloser: logCloser,
		config:    cfg,
		fs:        fs,
		settings:  settings,
		presets:   presets,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetFs returns the filesystem the stores work on.
func (c *Container) GetFs() afero.Fs {
	return c.fs
}

// GetSettings returns the settings store.
func (c *Container) GetSettings() *store.SettingsManager {
	return c.settings
}

// GetPresets returns the preset store.
func (c *Container) GetPresets() *store.PresetManager {
	return c.presets
}

// LoadTables returns the input and output tables filled from the selected preset.
func (c *Container) LoadTables() (*table.MemoryTable, *table.MemoryTable) {
	return c.LoadTable(models.KindInput), c.LoadTable(models.KindOutput)
}

// LoadTable returns the table of one category list of the selected preset.
func (c *Container) LoadTable(kind models.CategoryKind) *table.MemoryTable {
	t := table.NewMemoryTable(string(kind))
	table.Load(t, c.presets.Document().Categories(kind))
	return t
}

// Close releases the log file, if one was opened.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	if c.logCloser == nil {
		return nil
	}
	return c.logCloser.Close()
}

func closeLog(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
