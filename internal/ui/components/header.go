// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the forecast TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/ui/styles"
	"github.com/jeranaias/forecast-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// DefaultTitle is the application title shown in the header.
const DefaultTitle = "Wynn Resort Forecast AI"

// Header is the one-line title bar.
type Header struct {
	Title string // Main title
	Width int    // Available width
	theme *styles.Theme
}

// NewHeader creates a header with the default title.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: DefaultTitle,
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTheme swaps the theme after a config reload.
func (h *Header) SetTheme(theme *styles.Theme) {
	h.theme = theme
}

// DisconnectedBadge marks the header while no forecasting backend exists.
const DisconnectedBadge = "NOT CONNECTED"

// View renders the header: title on the left, connection badge on the right.
func (h *Header) View() string {
	width := max(h.Width, 20)

	right := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true).Render(DisconnectedBadge)

	// Header padding takes two cells.
	inner := width - 2
	titleWidth := inner - lipgloss.Width(right) - 1
	if titleWidth < 4 {
		right = ""
		titleWidth = inner
	}
	title := h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, titleWidth))

	gap := max(inner-lipgloss.Width(title)-lipgloss.Width(right), 0)
	line := title + lipgloss.NewStyle().Width(gap).Render("") + right

	return h.theme.Header.Width(width).MaxWidth(width).Render(line)
}
