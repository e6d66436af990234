// Package config loads and saves user preferences for ppvcalc.
// Preferences cover startup defaults only; the calculator never
// persists the values a user dials in during a session.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ppvcalc/internal/params"
	"ppvcalc/internal/population"
)

// Config holds user preferences.
type Config struct {
	Theme       string  `json:"theme"` // "light", "dark", or "" for auto
	Population  int     `json:"population"`
	Sensitivity float64 `json:"sensitivity"`
	Specificity float64 `json:"specificity"`
	Prevalence  float64 `json:"prevalence"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Population:  population.DefaultSize,
		Sensitivity: params.DefaultSensitivity,
		Specificity: params.DefaultSpecificity,
		Prevalence:  params.DefaultPrevalence,
	}
}

// ConfigDir returns the directory where config is stored.
func ConfigDir() (string, error) {
	// Prefer a project-local .ppvcalc directory if present.
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".ppvcalc")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ppvcalc"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk. A missing file is not an
// error; it yields the defaults.
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Population <= 0 {
		cfg.Population = population.DefaultSize
	}

	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "config.json")
	return os.WriteFile(path, data, 0644)
}
