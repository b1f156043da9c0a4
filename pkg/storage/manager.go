// Package storage writes scan results to disk. Every scan gets its own
// directory and files land atomically via a temp file rename.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AllocateDirectory creates a fresh directory for one scan under baseDir.
// When name already exists the suffixes _1, _2, ... are probed in order, so
// repeated scans of the same profile never overwrite earlier results.
func AllocateDirectory(baseDir, name string) (string, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return "", fmt.Errorf("creating base directory: %w", err)
	}

	candidate := filepath.Join(baseDir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			break
		} else if err != nil {
			return "", fmt.Errorf("probing %s: %w", candidate, err)
		}
		candidate = filepath.Join(baseDir, fmt.Sprintf("%s_%d", name, i))
	}

	if err := os.Mkdir(candidate, 0755); err != nil {
		return "", fmt.Errorf("creating scan directory: %w", err)
	}
	return candidate, nil
}

// Manager writes the files of one scan into its allocated directory.
type Manager struct {
	outputDir string
}

// NewManager creates a Manager rooted at dir. The directory must already
// exist, normally via AllocateDirectory.
func NewManager(dir string) *Manager {
	return &Manager{outputDir: dir}
}

// Dir returns the scan directory.
func (m *Manager) Dir() string { return m.outputDir }

// WriteJSON marshals v with two-space indentation into filename inside the
// scan directory.
func (m *Manager) WriteJSON(filename string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filename, err)
	}
	return m.SaveFile(filename, append(data, '\n'))
}

// SaveFile writes data to relPath inside the scan directory, creating any
// intermediate directories. The write goes to a temp file first and is
// renamed into place, so readers never observe a partial file.
func (m *Manager) SaveFile(relPath string, data []byte) error {
	path := filepath.Join(m.outputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", relPath, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", relPath, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", relPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", relPath, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming %s into place: %w", relPath, err)
	}
	return nil
}
