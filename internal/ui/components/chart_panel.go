// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the forecast TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/chart"
	"github.com/jeranaias/forecast-tui/internal/ui/styles"
	"github.com/jeranaias/forecast-tui/internal/util"
)

// =============================================================================
// CHART PANEL COMPONENT
// =============================================================================

// ChartPanelTitle heads the forecast panel.
const ChartPanelTitle = "Resort Operations Forecast"

// chartPanelChrome is the space taken by border (2) and title line (1).
const (
	chartPanelChromeWidth  = 4 // border + horizontal padding
	chartPanelChromeHeight = 3 // border + title
)

// ChartPanel frames the chart widget with a title and border.
type ChartPanel struct {
	Title  string
	Width  int
	Height int
	theme  *styles.Theme
}

// NewChartPanel creates a chart panel.
func NewChartPanel(theme *styles.Theme) *ChartPanel {
	return &ChartPanel{Title: ChartPanelTitle, theme: theme}
}

// SetSize updates the outer panel size.
func (p *ChartPanel) SetSize(width, height int) {
	p.Width = width
	p.Height = height
}

// SetTheme swaps the theme after a config reload.
func (p *ChartPanel) SetTheme(theme *styles.Theme) {
	p.theme = theme
}

// Surface returns the region available to the chart widget.
// It is nil when the panel is too small to draw anything.
func (p *ChartPanel) Surface() *chart.Surface {
	w := p.Width - chartPanelChromeWidth
	h := p.Height - chartPanelChromeHeight
	if w <= 0 || h <= 0 {
		return nil
	}
	return &chart.Surface{Width: w, Height: h}
}

// View renders the panel around body. An empty body shows fallback instead.
func (p *ChartPanel) View(body, fallback string) string {
	innerW := max(p.Width-chartPanelChromeWidth, 1)
	innerH := max(p.Height-chartPanelChromeHeight, 1)

	if body == "" {
		lines := util.Wrap(fallback, innerW)
		body = p.theme.HeaderMeta.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	title := p.theme.PanelTitle.Render(util.TruncateWidth(p.Title, innerW))
	content := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH).
		Render(body)

	return p.theme.Panel.
		Width(max(p.Width-2, 1)).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
