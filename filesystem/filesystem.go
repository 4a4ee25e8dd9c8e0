// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Everything that touches disk (config, logs, the version cache, inline output files) goes
// through API so tests can swap in an in-memory backend.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// CreateAll creates (or truncates) the file at path, creating missing parent directories first.
func CreateAll(path string) (afero.File, error) {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return backend.Create(path)
}
