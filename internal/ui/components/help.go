// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the forecast TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/ui/styles"
)

// =============================================================================
// HELP OVERLAY COMPONENT
// =============================================================================

// HelpMarkdown is the help overlay source.
const HelpMarkdown = `# Wynn Resort Forecast AI

Type a question about occupancy or staffing and press **Enter**.

| Key | Action |
| --- | --- |
| Enter, Ctrl+S | Send message |
| Ctrl+Y | Copy last reply |
| PgUp / PgDn | Scroll messages |
| F1, ? (empty input) | Toggle this help |
| Esc, Ctrl+C, Ctrl+Q | Quit |

> The forecasting backend is not connected yet. Every message receives the
> same placeholder reply and the chart shows no data.
`

// HelpOverlay renders HelpMarkdown with glamour inside a bordered box.
type HelpOverlay struct {
	Width    int
	Height   int
	theme    *styles.Theme
	rendered string
	cacheKey string
}

// NewHelpOverlay creates the help overlay.
func NewHelpOverlay(theme *styles.Theme) *HelpOverlay {
	return &HelpOverlay{theme: theme}
}

// SetSize updates the area the overlay is centered in.
func (h *HelpOverlay) SetSize(width, height int) {
	h.Width = width
	h.Height = height
}

// SetTheme swaps the theme and drops the cached rendering.
func (h *HelpOverlay) SetTheme(theme *styles.Theme) {
	h.theme = theme
	h.cacheKey = ""
}

// View renders the overlay centered in its area.
func (h *HelpOverlay) View() string {
	boxWidth := min(max(h.Width-8, 30), 80)
	body := h.markdown(boxWidth - 6)

	box := h.theme.HelpBox.Width(boxWidth).Render(body)
	return lipgloss.Place(max(h.Width, 1), max(h.Height, 1), lipgloss.Center, lipgloss.Center, box)
}

// markdown renders the help text once per width and theme.
func (h *HelpOverlay) markdown(wrap int) string {
	style := "dark"
	if !h.theme.IsDark {
		style = "light"
	}
	key := fmt.Sprintf("%s/%d", style, wrap)
	if key == h.cacheKey {
		return h.rendered
	}

	out, err := RenderMarkdown(HelpMarkdown, style, wrap)
	if err != nil {
		out = HelpMarkdown
	}
	h.rendered = strings.TrimRight(out, "\n")
	h.cacheKey = key
	return h.rendered
}

// RenderMarkdown renders md with a glamour standard style ("dark", "light", "notty").
func RenderMarkdown(md, style string, wrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(wrap, 20)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
