package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statePath = "/home/me/.raph"

func newMemStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Dir(statePath), 0755))
	return NewStore(fs, statePath), fs
}

func TestWriteProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  string
		expected string
	}{
		{"Named profile", "dev", "dev"},
		{"Default is empty", "default", ""},
		{"Whitespace kept", "my team", "my team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs := newMemStore(t)

			require.NoError(t, s.Write(tt.profile))

			data, err := afero.ReadFile(fs, statePath)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestWriteOverwrites(t *testing.T) {
	s, fs := newMemStore(t)
	require.NoError(t, afero.WriteFile(fs, statePath, []byte("a-much-longer-previous-profile\n"), 0644))

	require.NoError(t, s.Write("dev"))

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "dev", got)
}

func TestRoundTripIdempotent(t *testing.T) {
	for _, profile := range []string{"dev", "prod", "default"} {
		t.Run(profile, func(t *testing.T) {
			s, _ := newMemStore(t)
			want := profile
			if profile == "default" {
				want = ""
			}

			for i := 0; i < 3; i++ {
				require.NoError(t, s.Write(profile))
				got, err := s.Read()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s, fs := newMemStore(t)

	require.NoError(t, s.Write("dev"))
	require.NoError(t, s.Write("prod"))

	entries, err := afero.ReadDir(fs, filepath.Dir(statePath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".raph", entries[0].Name())
}

func TestReadMissing(t *testing.T) {
	s, _ := newMemStore(t)

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestWriteMissingParentDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(afero.NewOsFs(), filepath.Join(dir, "missing", ".raph"))

	err := s.Write("dev")
	assert.ErrorIs(t, err, ErrPersist)
}

func TestWriteOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".raph")
	s := NewStore(afero.NewOsFs(), path)

	require.NoError(t, s.Write("prod"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteReadOnlyFs(t *testing.T) {
	base, _ := newMemStore(t)
	s := NewStore(afero.NewReadOnlyFs(base.fs), statePath)

	err := s.Write("dev")
	assert.ErrorIs(t, err, ErrPersist)
}
