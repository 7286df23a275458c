package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "%s> ", cfg.Prompt)
	assert.Equal(t, "which", cfg.WhichCommand)
	assert.Equal(t, "WARN", cfg.LogLevel)
	assert.True(t, cfg.Suggestions)
	assert.Contains(t, cfg.HistoryFile, ".shellsense_history")
}

func TestLoadConfigFileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.jsonc")
	content := `{
		// comment and trailing comma are fine
		"prompt": "$ ",
		"shell": "/bin/zsh",
		"suggestions": false,
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SHELLSENSE_CONFIG", path)
	t.Setenv("SHELLSENSE_SHELL", "")
	t.Setenv("SHELLSENSE_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "/bin/zsh", cfg.Shell)
	assert.False(t, cfg.Suggestions)
	// Untouched fields keep their defaults.
	assert.Equal(t, "which", cfg.WhichCommand)
}

func TestLoadEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"shell": "/bin/zsh", "logLevel": "INFO"}`), 0o644))
	t.Setenv("SHELLSENSE_CONFIG", path)
	t.Setenv("SHELLSENSE_SHELL", "/usr/bin/fish")
	t.Setenv("SHELLSENSE_LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "/usr/bin/fish", cfg.Shell)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
}

func TestLoadMalformedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))
	t.Setenv("SHELLSENSE_CONFIG", path)
	t.Setenv("SHELLSENSE_SHELL", "")
	t.Setenv("SHELLSENSE_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, Default().Prompt, cfg.Prompt)
}
