// Package fileutils provides the file operations behind the settings and
// preset documents: directory creation and JSON read, write and merge-write.
// Every function takes the afero.Fs to operate on so callers and tests can
// swap the real disk for an in-memory or read-only filesystem.
package fileutils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/csv-presets/internal/logging"
	"fjacquet/csv-presets/internal/models"

	"github.com/spf13/afero"
)

const jsonIndent = "    "

var log = logging.NewDiscardLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(fs afero.Fs, filePath string) bool {
	info, err := fs.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(fs afero.Fs, dirPath string) bool {
	info, err := fs.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectory creates all missing parent directories of filePath.
func EnsureDirectory(fs afero.Fs, filePath string) error {
	dir := filepath.Dir(filePath)
	if DirectoryExists(fs, dir) {
		log.Debug("Directory already exists", logging.F(logging.FieldFile, dir))
		return nil
	}
	if err := fs.MkdirAll(dir, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	log.Debug("Created directory", logging.F(logging.FieldFile, dir))
	return nil
}

// ReadJSON decodes the JSON document at filePath into v. A missing file is
// reported with an error wrapping os.ErrNotExist.
func ReadJSON(fs afero.Fs, filePath string, v interface{}) error {
	data, err := afero.ReadFile(fs, filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return nil
}

// WriteJSON serializes v as indented JSON and replaces the file at filePath.
// Parent directories are created as needed.
func WriteJSON(fs afero.Fs, filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	data = append(data, '\n')

	if err := EnsureDirectory(fs, filePath); err != nil {
		return err
	}
	return replaceFile(fs, filePath, data)
}

// MergeWriteJSON reads the JSON object at filePath (an empty object when the
// file is absent), overlays the top-level keys of partial and writes the
// result back. Keys of partial win; all other existing keys are preserved.
// The merged object is returned.
func MergeWriteJSON(fs afero.Fs, filePath string, partial interface{}) (map[string]json.RawMessage, error) {
	updates, err := toObject(partial)
	if err != nil {
		return nil, fmt.Errorf("failed to merge into %s: %w", filePath, err)
	}

	existing := map[string]json.RawMessage{}
	if err := ReadJSON(fs, filePath, &existing); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		existing = map[string]json.RawMessage{}
	}
	if existing == nil {
		existing = map[string]json.RawMessage{}
	}

	for key, value := range updates {
		existing[key] = value
	}

	if err := WriteJSON(fs, filePath, existing); err != nil {
		return nil, err
	}
	log.Debug("Merged keys into JSON file",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(updates)))
	return existing, nil
}

// RemoveFile deletes filePath. A file that is already gone is reported with
// an error wrapping os.ErrNotExist.
func RemoveFile(fs afero.Fs, filePath string) error {
	if !FileExists(fs, filePath) {
		return fmt.Errorf("failed to remove %s: %w", filePath, os.ErrNotExist)
	}
	if err := fs.Remove(filePath); err != nil {
		return fmt.Errorf("failed to remove %s: %w", filePath, err)
	}
	return nil
}

// RenameFile moves oldPath to newPath, refusing to overwrite an existing file.
func RenameFile(fs afero.Fs, oldPath, newPath string) error {
	if FileExists(fs, newPath) {
		return fmt.Errorf("failed to rename %s: %w", oldPath, os.ErrExist)
	}
	if err := EnsureDirectory(fs, newPath); err != nil {
		return err
	}
	if err := fs.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// replaceFile writes data next to filePath and renames it into place so a
// failed write never leaves a truncated document behind.
func replaceFile(fs afero.Fs, filePath string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(filePath), filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	// temp files are created 0600
	if err := fs.Chmod(tmpName, models.PermissionDataFile); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := fs.Rename(tmpName, filePath); err != nil {
		_ = fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	return nil
}

func toObject(v interface{}) (map[string]json.RawMessage, error) {
	if raw, ok := v.(map[string]json.RawMessage); ok {
		return raw, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, fmt.Errorf("partial data must be a JSON object, got %s", data)
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
