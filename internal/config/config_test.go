package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoad_MissingFile(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestSaveAndLoad(t *testing.T) {
	dir := useTempConfigHome(t)

	require.NoError(t, Save(&Config{Server: "https://tmp.example.org", DarkTheme: true}))

	data, err := os.ReadFile(filepath.Join(dir, "tm", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://tmp.example.org")
	assert.Contains(t, string(data), "dark_theme = true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://tmp.example.org", cfg.Server)
	assert.True(t, cfg.DarkTheme)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tm"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tm", "config.toml"), []byte("server = ["), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}
