package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBPathPrecedence(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv("XDG_DATA_HOME", "")

	// Flag wins over everything.
	t.Setenv(EnvDBPath, "/env/notes.db")
	assert.Equal(t, "/flag/notes.db", DBPath("/flag/notes.db", Config{DBPath: "/cfg/notes.db"}))

	// Env wins over config.
	assert.Equal(t, "/env/notes.db", DBPath("", Config{DBPath: "/cfg/notes.db"}))

	// Config wins over the XDG default.
	t.Setenv(EnvDBPath, "")
	assert.Equal(t, "/cfg/notes.db", DBPath("", Config{DBPath: "/cfg/notes.db"}))

	// XDG data dir wins over the home default.
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, filepath.Join("/xdg/data", "cheatnote", "cheatnote.db"), DBPath("", Config{}))
}

func TestDBPathHomeDefault(t *testing.T) {
	t.Setenv(EnvDBPath, "")
	t.Setenv("XDG_DATA_HOME", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "cheatnote", "cheatnote.db"), DBPath("", Config{}))
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cheatnote"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "cheatnote", "config.yaml"),
		[]byte("db_path: /custom/notes.db\ncolor: never\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/custom/notes.db", cfg.DBPath)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoadMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cheatnote"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "cheatnote", "config.yaml"),
		[]byte("db_path: [unclosed\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}
