// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/csv-presets/internal/dateutils"
	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"
	"fjacquet/csv-presets/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by the configuration.
	EnvPrefix = "CSVPRESETS"
	// DefaultSettingsFile is where the settings document lives unless configured.
	DefaultSettingsFile = "./data/settings.json"
)

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

// DataConfig locates the settings document and names the seeded preset.
type DataConfig struct {
	SettingsFile  string `mapstructure:"settings_file" yaml:"settings_file"`
	DefaultPreset string `mapstructure:"default_preset" yaml:"default_preset"`
}

// CategoryConfig holds the values of a newly added category row.
type CategoryConfig struct {
	DateFrom string `mapstructure:"date_from" yaml:"date_from"`
	DateTo   string `mapstructure:"date_to" yaml:"date_to"`
}

// CSVConfig controls category CSV export and import.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// UIConfig is read for compatibility with older settings. Window placement
// is not implemented, so Monitor has no effect.
type UIConfig struct {
	Monitor int `mapstructure:"monitor" yaml:"monitor"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Data     DataConfig     `mapstructure:"data" yaml:"data"`
	Category CategoryConfig `mapstructure:"category" yaml:"category"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.csv-presets")
	v.AddConfigPath(".csv-presets")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetDefault("data.settings_file", DefaultSettingsFile)
	v.SetDefault("data.default_preset", models.DefaultPresetName)

	v.SetDefault("category.date_from", models.DefaultDateFrom)
	v.SetDefault("category.date_to", models.DefaultDateTo)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("ui.monitor", 0)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.SettingsFile) == "" {
		return fmt.Errorf("data.settings_file cannot be empty")
	}

	if err := store.ValidatePresetName(config.Data.DefaultPreset); err != nil {
		return fmt.Errorf("data.default_preset: %w", err)
	}

	if err := dateutils.ValidateRange(config.Category.DateFrom, config.Category.DateTo); err != nil {
		return fmt.Errorf("category dates: %w", err)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter.
func (c *Config) Delimiter() rune {
	if r := []rune(c.CSV.Delimiter); len(r) == 1 {
		return r[0]
	}
	return ','
}

// NewCategory returns the row inserted by "add category", using the
// configured date range in display form.
func (c *Config) NewCategory() models.Category {
	category := models.NewDefaultCategory()
	if from, err := dateutils.NormalizeDate(c.Category.DateFrom); err == nil {
		category.DateFrom = from
	}
	if to, err := dateutils.NormalizeDate(c.Category.DateTo); err == nil {
		category.DateTo = to
	}
	return category
}

// ConfigureLoggingFromConfig builds the application logger. When log.file is
// set, lines go to stderr and are appended to that file; the returned closer
// releases it.
func ConfigureLoggingFromConfig(config *Config) (logging.Logger, io.Closer, error) {
	if config.Log.File == "" {
		return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format, os.Stderr), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.Log.File), models.PermissionDirectory); err != nil {
		return nil, nil, fmt.Errorf("error creating log directory: %w", err)
	}
	file, err := os.OpenFile(config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, models.PermissionDataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}
	out := io.MultiWriter(os.Stderr, file)
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format, out), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
