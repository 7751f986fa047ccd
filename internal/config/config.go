// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the Eagle portal.
//
// TOML file with sensible defaults and environment variable overrides.
// Locations, in order of precedence:
//   - path given on the command line
//   - ~/.eagle-portal/config.toml
//   - built-in defaults
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete portal configuration.
type Config struct {
	// API holds the worker API settings.
	API APIConfig `toml:"api"`

	// UI holds terminal interface settings.
	UI UIConfig `toml:"ui"`

	// DataDir is where the session store and exports live.
	// Default: ~/.eagle-portal
	DataDir string `toml:"data_dir"`

	// Timezone is the IANA zone used for all displayed timestamps.
	Timezone string `toml:"timezone"`
}

// APIConfig contains worker API client settings.
type APIConfig struct {
	// BaseURL is the worker API origin, no trailing slash.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond throttles the client. Zero disables throttling.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// UIConfig contains terminal interface settings.
type UIConfig struct {
	// Theme selects the color theme: "dark" or "light".
	Theme string `toml:"theme"`

	// PageSize is the number of rows per table page.
	PageSize int `toml:"page_size"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "https://eagle-security.charliemoimeme.workers.dev",
			TimeoutSeconds:    30,
			RequestsPerSecond: 5,
		},
		UI: UIConfig{
			Theme:    "dark",
			PageSize: 15,
		},
		DataDir:  defaultDataDir(),
		Timezone: "Europe/Brussels",
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eagle-portal"
	}
	return filepath.Join(home, ".eagle-portal")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.toml")
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the config file at path, fills defaults for anything unset and
// applies environment overrides. A missing file is not an error: defaults
// plus environment apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.fillDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = d.API.TimeoutSeconds
	}
	if c.API.RequestsPerSecond < 0 {
		c.API.RequestsPerSecond = d.API.RequestsPerSecond
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = d.UI.PageSize
	}
	if c.DataDir == "" {
		c.DataDir = d.DataDir
	}
	if c.Timezone == "" {
		c.Timezone = d.Timezone
	}
}

// applyEnv overrides fields from EAGLE_PORTAL_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("EAGLE_PORTAL_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("EAGLE_PORTAL_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("EAGLE_PORTAL_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("EAGLE_PORTAL_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("EAGLE_PORTAL_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.UI.PageSize = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the portal cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: api.base_url %q is not an absolute URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: api.base_url scheme %q not supported", u.Scheme)
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("config: ui.theme %q, want dark or light", c.UI.Theme)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("config: unknown timezone %q", c.Timezone)
	}
	return nil
}

// Timeout returns the request timeout as a duration.
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StorePath returns the session store file under the data dir.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "session.db")
}

// Location resolves the configured timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
