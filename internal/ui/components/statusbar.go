// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the forecast TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/ui/styles"
	"github.com/jeranaias/forecast-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: reply state on the left, hints on the right.
type StatusBar struct {
	Width   int
	Pending int    // Replies waiting to be delivered
	Spinner string // Current spinner frame
	Policy  string // Active reply policy
	Notice  string // Transient message, e.g. "Copied"
	IsError bool   // Render Notice as an error
	Hints   string // Rendered key help
	theme   *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetTheme swaps the theme after a config reload.
func (s *StatusBar) SetTheme(theme *styles.Theme) {
	s.theme = theme
}

// SetNotice shows a transient message. An empty string clears it.
func (s *StatusBar) SetNotice(text string, isError bool) {
	s.Notice = text
	s.IsError = isError
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := s.theme

	var state string
	switch {
	case s.Notice != "" && s.IsError:
		state = t.StatusError.Render("[X] " + s.Notice)
	case s.Notice != "":
		state = t.StatusIdle.Render(s.Notice)
	case s.Pending > 0:
		state = t.Spinner.Render(s.Spinner) + " " +
			t.StatusBusy.Render(fmt.Sprintf("Waiting for %d reply(s)", s.Pending))
	default:
		state = t.StatusIdle.Render("Ready")
	}
	if s.Policy != "" {
		state += t.ShortcutDesc.Render("  policy: " + s.Policy)
	}

	inner := max(s.Width-2, 1)
	hints := s.Hints
	room := inner - lipgloss.Width(state) - 2
	if room < 8 {
		hints = ""
	} else if lipgloss.Width(hints) > room {
		hints = util.TruncateWidth(hints, room)
	}

	gap := max(inner-lipgloss.Width(state)-lipgloss.Width(hints), 1)
	line := state + lipgloss.NewStyle().Width(gap).Render("") + hints

	return t.StatusBar.Width(s.Width).MaxWidth(s.Width).Render(line)
}
