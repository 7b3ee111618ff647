// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/forecast-tui/internal/echo"
)

// clearEnv unsets every FORECAST_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FORECAST_REPLY_POLICY", "FORECAST_REPLY_DELAY", "FORECAST_THEME", "FORECAST_LOG_FILE", "FORECAST_DEBUG"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// =============================================================================
// DEFAULT & VALIDATION TESTS
// =============================================================================

// TestConfig_Default tests that Default() returns a valid config.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.Reply.Delay.Std() != 500*time.Millisecond {
		t.Errorf("Expected default delay 500ms, got %s", cfg.Reply.Delay.Std())
	}
	if cfg.Reply.Policy != "per-submission" {
		t.Errorf("Expected default policy 'per-submission', got '%s'", cfg.Reply.Policy)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("Expected default theme 'auto', got '%s'", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{"valid default config", func(c *Config) {}, ""},
		{"single-inflight policy", func(c *Config) { c.Reply.Policy = "single-inflight" }, ""},
		{"invalid policy", func(c *Config) { c.Reply.Policy = "debounce" }, "reply.policy"},
		{"invalid theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"zero delay", func(c *Config) { c.Reply.Delay = 0 }, "reply.delay"},
		{"delay above one minute", func(c *Config) { c.Reply.Delay = Duration(2 * time.Minute) }, "reply.delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs), "error %v should be ValidateErrors", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.NotEmpty(t, verrs[0].Message)
		})
	}
}

func TestValidateErrors_Error(t *testing.T) {
	errs := ValidateErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	assert.Equal(t, "a: bad; b: worse", errs.Error())
	assert.Equal(t, "no validation errors", ValidateErrors{}.Error())
}

// =============================================================================
// LOAD & SAVE TESTS
// =============================================================================

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromPath_PartialFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reply]\ndelay = \"250ms\"\npolicy = \"single-inflight\"\n"), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Reply.Delay.Std())
	assert.Equal(t, echo.PolicySingleInflight, cfg.ReplyPolicy())
	assert.Equal(t, "auto", cfg.UI.Theme, "unset keys keep defaults")
	assert.True(t, cfg.UI.ShowHelp)
}

func TestLoadFromPath_EnumsIgnoreCase(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[reply]\npolicy = \"Single-Inflight\"\n\n[ui]\ntheme = \" Dark \"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "single-inflight", cfg.Reply.Policy)
	assert.Equal(t, echo.PolicySingleInflight, cfg.ReplyPolicy())
	assert.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadTOML_UnknownKeysGoToLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reply]\nspeed = 3\n"), 0600))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))
	assert.Contains(t, buf.String(), "CONFIG: unknown keys")
	assert.Contains(t, buf.String(), "reply.speed")
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600))

	_, err := LoadFromPath(path)
	require.Error(t, err)
	var verrs ValidateErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestLoadFromPath_BadDuration(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reply]\ndelay = \"soon\"\n"), 0600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Reply.Delay = Duration(750 * time.Millisecond)
	cfg.UI.Theme = "light"

	require.NoError(t, SaveTOML(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_String(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "[reply]")
	assert.Contains(t, out, `delay = "500ms"`)
	assert.Contains(t, out, `policy = "per-submission"`)
}

// =============================================================================
// ENVIRONMENT TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_REPLY_POLICY", "Single-Inflight")
	t.Setenv("FORECAST_REPLY_DELAY", "2s")
	t.Setenv("FORECAST_THEME", "dark")
	t.Setenv("FORECAST_LOG_FILE", "/tmp/forecast-test.log")
	t.Setenv("FORECAST_DEBUG", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())

	assert.Equal(t, "single-inflight", cfg.Reply.Policy)
	assert.Equal(t, 2*time.Second, cfg.Reply.Delay.Std())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "/tmp/forecast-test.log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)

	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forecast-test.log", path)
}

func TestApplyEnvOverrides_BadDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORECAST_REPLY_DELAY", "later")

	assert.Error(t, Default().ApplyEnvOverrides())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FORECAST_THEME=light\n"), 0600))

	require.NoError(t, LoadDotEnv(path))
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnvOverrides())
	assert.Equal(t, "light", cfg.UI.Theme)
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveTOML(Default(), path))

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(c *Config, err error) {
		if err == nil {
			reloaded <- c
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	updated := Default()
	updated.Reply.Policy = "single-inflight"
	require.NoError(t, SaveTOML(updated, path))

	select {
	case c := <-reloaded:
		assert.Equal(t, "single-inflight", c.Reply.Policy)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}
}
