// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for saathi-tui.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - SAATHI_* environment variables
//   - ~/.saathi/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete saathi-tui configuration.
type Config struct {
	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// User defaults applied at startup
	User UserConfig `toml:"user"`

	// Speech bridge configuration
	Speech SpeechConfig `toml:"speech"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains AgriSaathi service settings.
type BackendConfig struct {
	// BaseURL is the backend base URL.
	BaseURL string `toml:"base_url"`
	// TimeoutSecs bounds every request. The query endpoint runs an AI
	// pipeline server-side, so keep this generous.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UserConfig contains per-user startup defaults.
type UserConfig struct {
	// Language is the UI locale: "en", "hi" or "mr".
	Language string `toml:"language"`
	// Pincode pre-fills the location at startup. Empty means the user is
	// prompted to set one.
	Pincode string `toml:"pincode"`
	// UserID identifies the user to the equipment-sharing endpoints.
	UserID string `toml:"user_id"`
}

// SpeechConfig controls the optional voice bridge.
type SpeechConfig struct {
	// Enabled turns the speech bridge on. Even when true, the bridge only
	// activates if the required engines are installed.
	Enabled bool `toml:"enabled"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme selects the color theme ("dark" or "light").
	Theme string `toml:"theme"`
	// ShowTimestamps displays message times in the chat view.
	ShowTimestamps bool `toml:"show_timestamps"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:     "https://agrisaathi.onrender.com",
			TimeoutSecs: 60,
		},
		User: UserConfig{
			Language: "en",
		},
		Speech: SpeechConfig{
			Enabled: true,
		},
		UI: UIConfig{
			Theme:          "dark",
			ShowTimestamps: false,
		},
	}
}

// Timeout returns the backend timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// Locale returns the configured language as a parsed locale.
func (c *Config) Locale() model.Locale {
	return model.ParseLocale(c.User.Language)
}

// =============================================================================
// FILE LOCATIONS
// =============================================================================

// ConfigDir returns the saathi configuration directory (~/.saathi).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".saathi"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads configuration from disk, applies environment overrides and
// validates the result. A missing config file is not an error; defaults
// apply.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if loadErr := loadTOML(cfg, path); loadErr != nil && !os.IsNotExist(loadErr) {
			return nil, loadErr
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads configuration from an explicit file path. The file must
// exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := loadTOML(cfg, path); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies SAATHI_* environment variables over the loaded
// values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SAATHI_BASE_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("SAATHI_LANG"); v != "" {
		c.User.Language = v
	}
	if v := os.Getenv("SAATHI_PINCODE"); v != "" {
		c.User.Pincode = v
	}
	if v := os.Getenv("SAATHI_SPEECH"); v != "" {
		c.Speech.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url must not be empty")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url %q is not a valid URL", c.Backend.BaseURL)
	}
	if c.Backend.TimeoutSecs <= 0 {
		return fmt.Errorf("backend.timeout_secs must be positive, got %d", c.Backend.TimeoutSecs)
	}
	if !model.Locale(c.User.Language).Valid() {
		return fmt.Errorf("user.language %q is not supported", c.User.Language)
	}
	if c.User.Pincode != "" && !model.ValidPincode(c.User.Pincode) {
		return fmt.Errorf("user.pincode %q is not a 6-digit pincode", c.User.Pincode)
	}
	if c.UI.Theme != "" && c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("ui.theme %q is not supported", c.UI.Theme)
	}
	return nil
}

// =============================================================================
// GLOBAL INSTANCE
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance, loading it on first use.
// Falls back to defaults if loading fails.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	globalConfig = cfg
	globalConfigMu.Unlock()
}
