// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"fjacquet/csv-presets/internal/logging"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or the
// parent directory, once per process. Variables already set are kept.
func LoadEnv(logger logging.Logger) {
	once.Do(func() {
		loadEnvFile(logger, ".env", filepath.Join("..", ".env"))
	})
}

// loadEnvFile loads the first existing candidate and returns its path.
func loadEnvFile(logger logging.Logger, candidates ...string) string {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.Warn("Error loading .env file", logging.F(logging.FieldFile, envFile), logging.F(logging.FieldError, err.Error()))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFile, envFile))
		return envFile
	}
	logger.Debug("No .env file found, using environment variables")
	return ""
}

