// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for forecast.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeranaias/forecast-tui/internal/config"
	"github.com/jeranaias/forecast-tui/internal/echo"
)

// Build information, set with -ldflags at release time.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

const appName = "forecast"

// =============================================================================
// FLAGS
// =============================================================================

// Flags holds the global command-line options.
type Flags struct {
	ConfigPath  string
	ReplyPolicy string
	ReplyDelay  time.Duration
	Theme       string
	LogFile     string
	NoAltScreen bool
	Debug       bool
}

// Apply copies the flags that were set over cfg.
func (f Flags) Apply(cfg *config.Config) error {
	if f.ReplyPolicy != "" {
		p, err := echo.ParsePolicy(f.ReplyPolicy)
		if err != nil {
			return err
		}
		cfg.Reply.Policy = string(p)
	}
	if f.ReplyDelay > 0 {
		cfg.Reply.Delay = config.Duration(f.ReplyDelay)
	}
	if f.Theme != "" {
		cfg.UI.Theme = f.Theme
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.Debug {
		cfg.Log.Debug = true
	}
	return nil
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCommand builds the forecast command tree.
func NewRootCommand() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Resort operations forecast dashboard",
		Long: `forecast is a terminal dashboard for Wynn Resort operations.

It shows a chat panel next to a 168-hour forecast chart for room occupancy,
cleaning staff and security staff. The forecasting backend is not connected
yet: every message receives a placeholder reply and the chart has no data.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "config file path (default ~/.forecast/config.toml)")
	pf.StringVar(&flags.ReplyPolicy, "reply-policy", "", "reply policy: per-submission or single-inflight")
	pf.DurationVar(&flags.ReplyDelay, "reply-delay", 0, "delay before the placeholder reply (e.g. 500ms)")
	pf.StringVar(&flags.Theme, "theme", "", "color theme: dark, light or auto")
	pf.StringVar(&flags.LogFile, "log-file", "", "log file path (default ~/.forecast/forecast.log)")
	pf.BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&flags.NoAltScreen, "no-alt-screen", false, "render inline instead of using the alternate screen")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newConfigCommand(&flags))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// =============================================================================
// VERSION COMMAND
// =============================================================================

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s (commit: %s, built: %s)\n", appName, Version, GitCommit, BuildDate)
}

// =============================================================================
// CONFIG LOADING
// =============================================================================

// resolveConfigPath returns the --config value or the default path.
func resolveConfigPath(flags Flags) (string, error) {
	if flags.ConfigPath != "" {
		return flags.ConfigPath, nil
	}
	return config.ConfigPath()
}

// loadConfig loads .env, the config file and flag overrides, then validates.
func loadConfig(flags Flags) (*config.Config, string, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, "", err
	}
	path, err := resolveConfigPath(flags)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, path, err
	}
	if err := flags.Apply(cfg); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, path, nil
}
