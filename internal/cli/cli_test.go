// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/forecast-tui/internal/config"
	"github.com/jeranaias/forecast-tui/internal/echo"
)

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// isolate points HOME at a temp dir and clears FORECAST_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "FORECAST_") {
			name := strings.SplitN(kv, "=", 2)[0]
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(home))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

// =============================================================================
// VERSION TESTS
// =============================================================================

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "forecast version "+Version)
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestConfigPath_UsesFlag(t *testing.T) {
	isolate(t)
	out, err := run(t, "config", "path", "--config", "/tmp/custom.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.toml\n", out)
}

func TestConfigPath_Default(t *testing.T) {
	home := isolate(t)
	out, err := run(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".forecast", "config.toml"), strings.TrimSpace(out))
}

func TestConfigShow_DefaultsWhenFileMissing(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "missing.toml")

	out, err := run(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "per-submission")
	assert.Contains(t, out, "500ms")
}

func TestConfigShow_FlagsOverrideFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[reply]\ndelay = \"2s\"\n"), 0600))

	out, err := run(t, "config", "show", "--config", path,
		"--reply-policy", "single-inflight", "--theme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "2s")
	assert.Contains(t, out, "single-inflight")
	assert.Contains(t, out, "light")
}

func TestConfigShow_RejectsBadPolicy(t *testing.T) {
	home := isolate(t)
	_, err := run(t, "config", "show", "--config", filepath.Join(home, "c.toml"),
		"--reply-policy", "whenever")
	require.Error(t, err)
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "config.toml")

	out, err := run(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := config.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Reply, cfg.Reply)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0600))

	_, err := run(t, "config", "init", "--config", path)
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	_, err = run(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)
}

// =============================================================================
// FLAG TESTS
// =============================================================================

func TestFlagsApply(t *testing.T) {
	cfg := config.Default()
	f := Flags{
		ReplyPolicy: "single-inflight",
		ReplyDelay:  2 * time.Second,
		Theme:       "dark",
		LogFile:     "/tmp/x.log",
		Debug:       true,
	}

	require.NoError(t, f.Apply(cfg))
	assert.Equal(t, string(echo.PolicySingleInflight), cfg.Reply.Policy)
	assert.Equal(t, 2*time.Second, cfg.Reply.Delay.Std())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
	assert.True(t, cfg.Log.Debug)
}

func TestFlagsApply_EmptyLeavesConfig(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, Flags{}.Apply(cfg))
	assert.Equal(t, config.Default(), cfg)
}

// =============================================================================
// RUN TESTS
// =============================================================================

func TestRun_RequiresTerminal(t *testing.T) {
	isolate(t)
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	defer func() { isTerminal = orig }()

	_, err := run(t)
	assert.True(t, errors.Is(err, ErrNotTerminal))
}

func TestNewChatModel_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Reply.Policy = string(echo.PolicySingleInflight)
	cfg.Reply.Delay = config.Duration(time.Second)

	m := newChatModel(cfg)
	defer m.Teardown()

	assert.Equal(t, echo.PolicySingleInflight, m.Responder().Policy())
	assert.Equal(t, time.Second, m.Responder().Delay())
	require.NotEmpty(t, m.Messages())
}

func TestReloadMsg(t *testing.T) {
	cfg := config.Default()
	cfg.UI.Theme = "light"

	msg := reloadMsg(cfg, nil)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "light", msg.Theme)
	assert.Equal(t, cfg.ReplyPolicy(), msg.Policy)

	boom := errors.New("boom")
	assert.Equal(t, boom, reloadMsg(nil, boom).Err)
}
