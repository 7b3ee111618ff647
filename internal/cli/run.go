// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the command-line interface for forecast.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/forecast-tui/internal/config"
	"github.com/jeranaias/forecast-tui/internal/echo"
	"github.com/jeranaias/forecast-tui/internal/ui/chat"
	"github.com/jeranaias/forecast-tui/internal/ui/styles"
)

// ErrNotTerminal is returned when the dashboard is started without a TTY.
var ErrNotTerminal = errors.New("forecast needs an interactive terminal (stdin and stdout must be a TTY)")

// runTUI starts the dashboard and blocks until it exits.
func runTUI(ctx context.Context, flags Flags) error {
	if !IsTTY() || !IsStdoutTTY() {
		return ErrNotTerminal
	}

	cfg, path, err := loadConfig(flags)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("FORECAST: starting %s (policy=%s delay=%s theme=%s)",
		Version, cfg.Reply.Policy, cfg.Reply.Delay.Std(), cfg.UI.Theme)

	// Query the background now; a later "auto" reload reuses the answer.
	styles.DetectBackground()

	m := newChatModel(cfg)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !flags.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if ctx != nil {
		opts = append(opts, tea.WithContext(ctx))
	}
	p := tea.NewProgram(m, opts...)

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	startConfigWatch(watchCtx, path, flags, p)

	final, err := p.Run()
	if fm, ok := final.(chat.Model); ok {
		fm.Teardown()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	log.Printf("FORECAST: exited")
	return nil
}

// newChatModel builds the root view from configuration.
func newChatModel(cfg *config.Config) chat.Model {
	responder := echo.New(echo.Options{
		Delay:  cfg.Reply.Delay.Std(),
		Policy: cfg.ReplyPolicy(),
	})
	return chat.New(chat.Options{
		Theme:     styles.NewTheme(cfg.UI.Theme),
		Responder: responder,
		ShowHints: cfg.UI.ShowHelp,
	})
}

// setupLogging sends the standard logger to the configured file.
// The terminal belongs to the dashboard while it runs.
func setupLogging(cfg *config.Config) (func(), error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	flags := log.LstdFlags
	if cfg.Log.Debug {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)
	return func() { f.Close() }, nil
}

// startConfigWatch forwards config file changes to the program.
// Command-line flags still win over the reloaded file.
// A missing config directory disables live reload.
func startConfigWatch(ctx context.Context, path string, flags Flags, p *tea.Program) {
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		log.Printf("CONFIG: live reload disabled: %v", err)
		return
	}
	err := config.Watch(ctx, path, func(cfg *config.Config, err error) {
		if err == nil {
			err = flags.Apply(cfg)
		}
		p.Send(reloadMsg(cfg, err))
	})
	if err != nil {
		log.Printf("CONFIG: live reload disabled: %v", err)
	}
}

// reloadMsg converts a reload result into the message the chat view handles.
func reloadMsg(cfg *config.Config, err error) chat.ConfigReloadedMsg {
	if err != nil {
		return chat.ConfigReloadedMsg{Err: err}
	}
	return chat.ConfigReloadedMsg{
		Policy:    cfg.ReplyPolicy(),
		Theme:     cfg.UI.Theme,
		ShowHints: cfg.UI.ShowHelp,
	}
}
