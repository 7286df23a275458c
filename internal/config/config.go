// Package config loads shellsense configuration from JSONC files and
// the environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// Prompt is the REPL prompt template. "%s" is replaced with the
	// last element of the working directory.
	Prompt string `json:"prompt"`
	// Shell overrides the program used for alias discovery. Empty
	// means $SHELL with a /bin/bash fallback.
	Shell string `json:"shell"`
	// WhichCommand is the lookup utility for runtime existence checks.
	WhichCommand string `json:"whichCommand"`
	// HistoryFile is where the REPL persists line history.
	HistoryFile string `json:"historyFile"`
	// LogLevel is the minimum log level (DEBUG|INFO|WARN|ERROR).
	LogLevel string `json:"logLevel"`
	// Suggestions enables tab completion from the command inventory.
	Suggestions bool `json:"-"`
}

// fileConfig mirrors Config for file decoding; pointers distinguish
// "absent" from zero values so later sources only override what they
// actually set.
type fileConfig struct {
	Prompt       *string `json:"prompt"`
	Shell        *string `json:"shell"`
	WhichCommand *string `json:"whichCommand"`
	HistoryFile  *string `json:"historyFile"`
	LogLevel     *string `json:"logLevel"`
	Suggestions  *bool   `json:"suggestions"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:       "%s> ",
		WhichCommand: "which",
		HistoryFile:  filepath.Join(home, ".shellsense_history"),
		LogLevel:     "WARN",
		Suggestions:  true,
	}
}

// Load resolves configuration from, in priority order: built-in
// defaults, ~/.shellsense/config.json[c], ./.shellsense.json[c], the
// SHELLSENSE_CONFIG file override, then environment variables.
// Missing files are not errors; malformed files are skipped.
func Load() Config {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		applyFile(&cfg, filepath.Join(home, ".shellsense", "config.json"))
		applyFile(&cfg, filepath.Join(home, ".shellsense", "config.jsonc"))
	}
	applyFile(&cfg, ".shellsense.json")
	applyFile(&cfg, ".shellsense.jsonc")

	if path := os.Getenv("SHELLSENSE_CONFIG"); path != "" {
		applyFile(&cfg, path)
	}

	if shell := os.Getenv("SHELLSENSE_SHELL"); shell != "" {
		cfg.Shell = shell
	}
	if level := os.Getenv("SHELLSENSE_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg
}

// applyFile merges one JSONC config file into cfg. Comments and
// trailing commas are allowed; the file is stripped to plain JSON
// before decoding.
func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return
	}

	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.Shell != nil {
		cfg.Shell = *fc.Shell
	}
	if fc.WhichCommand != nil {
		cfg.WhichCommand = *fc.WhichCommand
	}
	if fc.HistoryFile != nil {
		cfg.HistoryFile = *fc.HistoryFile
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Suggestions != nil {
		cfg.Suggestions = *fc.Suggestions
	}
}
