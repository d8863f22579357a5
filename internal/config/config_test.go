package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", "")
	t.Setenv("RAPH_DEBUG", "")

	v := viper.New()
	initConfig(v)

	s, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, home, s.Home)
	assert.Equal(t, "", s.ActiveProfile)
	assert.Equal(t, filepath.Join(home, ".aws", "config"), s.AWSConfigFile)
	assert.Equal(t, filepath.Join(home, ".raph"), s.StateFile)
	assert.False(t, s.StrictHint)
	assert.False(t, s.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AWS_PROFILE", "prod")
	t.Setenv("AWS_CONFIG_FILE", "/custom/aws/config")
	t.Setenv("RAPH_DEBUG", "true")

	v := viper.New()
	initConfig(v)

	s, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, "prod", s.ActiveProfile)
	assert.Equal(t, "/custom/aws/config", s.AWSConfigFile)
	assert.True(t, s.Debug)
}

func TestLoadSettingsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", "")

	dir := filepath.Join(home, ".config", "raph")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "state_file = \"~/.cache/raph-profile\"\nstrict_hint = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	v := viper.New()
	initConfig(v)

	s, err := load(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cache", "raph-profile"), s.StateFile)
	assert.True(t, s.StrictHint)
}

func TestLoadIgnoresEnvironmentKeysInSettingsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", "")

	dir := filepath.Join(home, ".config", "raph")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "active_profile = \"prod\"\nhome = \"/elsewhere\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	v := viper.New()
	initConfig(v)

	s, err := load(v)
	require.NoError(t, err)
	assert.Empty(t, s.ActiveProfile)
	assert.Equal(t, home, s.Home)
	assert.Equal(t, filepath.Join(home, ".raph"), s.StateFile)
}

func TestLoadWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := load(viper.New())
	assert.ErrorIs(t, err, ErrHomeNotSet)
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Empty", "", ""},
		{"Absolute", "/tmp/state", "/tmp/state"},
		{"Tilde", "~/.raph", filepath.Join("/home/me", ".raph")},
		{"Tilde only", "~", "~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandHome(tt.path, "/home/me"))
		})
	}
}
