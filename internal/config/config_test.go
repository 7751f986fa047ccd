// Copyright (c) 2025-2026 Eagle Security
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 30*time.Second, cfg.API.Timeout())
	assert.Equal(t, "Europe/Brussels", cfg.Timezone)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default().API.BaseURL, cfg.API.BaseURL)
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
timezone = "Europe/Paris"

[api]
base_url = "https://staging.example.test"
timeout_seconds = 5

[ui]
theme = "light"
page_size = 30
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.test", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout())
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 30, cfg.UI.PageSize)
	assert.Equal(t, "Europe/Paris", cfg.Timezone)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().API.RequestsPerSecond, cfg.API.RequestsPerSecond)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EAGLE_PORTAL_API_URL", "http://localhost:8787")
	t.Setenv("EAGLE_PORTAL_THEME", "light")
	t.Setenv("EAGLE_PORTAL_PAGE_SIZE", "50")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8787", cfg.API.BaseURL)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, 50, cfg.UI.PageSize)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.API.BaseURL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.API.BaseURL = "ftp://example.test"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.UI.Theme = "solarized"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Timezone = "Mars/Olympus_Mons"
	assert.Error(t, cfg.Validate())
}

func TestStorePath(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/eagle-test"
	assert.Equal(t, filepath.Join("/tmp/eagle-test", "session.db"), cfg.StorePath())
}
