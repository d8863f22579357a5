// Package state persists the selected profile for the shell hook to read.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPersist wraps every failure to write the state file.
var ErrPersist = errors.New("failed to persist profile selection")

const defaultProfile = "default"

// Store reads and writes the single-line state file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a Store for the state file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// Write replaces the state file content with profile. The default profile
// is stored as an empty file. The new content is written to a temporary
// file next to the target and renamed over it, so readers never observe a
// partial write.
func (s *Store) Write(profile string) error {
	if profile == defaultProfile {
		profile = ""
	}

	dir := filepath.Dir(s.path)
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(profile); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.fs.Chmod(tmpName, 0644); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return nil
}

// Read returns the stored selection verbatim; "" means default. A missing
// state file reads as "".
func (s *Store) Read() (string, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	return string(data), nil
}
