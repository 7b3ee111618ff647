// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart draws the resort operations forecast chart.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/samber/lo"

	"github.com/jeranaias/forecast-tui/internal/util"
)

// plotColors maps series stroke colors to terminal colors for the plot.
var plotColors = map[string]asciigraph.AnsiColor{
	"#DAA520": asciigraph.Goldenrod,
	"#4169E1": asciigraph.RoyalBlue,
	"#DC143C": asciigraph.Crimson,
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	axisStyle        = lipgloss.NewStyle().Faint(true)
	placeholderStyle = lipgloss.NewStyle().Italic(true).Faint(true)
)

// Render draws the widget into its surface.
// With no data it draws a placeholder frame instead of a plot.
func (w *Widget) Render() string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.disposed {
		return ""
	}

	width, height := w.surface.Width, w.surface.Height
	header := []string{
		titleStyle.Render(util.TruncateWidth(w.cfg.Title, width)),
		renderLegend(w.cfg.Series, width),
		axisStyle.Render(util.TruncateWidth("y: "+w.cfg.YAxisTitle, width)),
	}

	var body string
	bodyHeight := height - len(header) - 1
	if lo.EveryBy(w.cfg.Series, Series.IsEmpty) {
		body = renderPlaceholder(width, bodyHeight)
	} else {
		body = renderPlot(w.cfg.Series, width, bodyHeight)
	}

	footer := axisStyle.Render(util.TruncateWidth("x: "+strings.Join(w.cfg.Labels, ", "), width))

	out := lipgloss.JoinVertical(lipgloss.Left, append(header, body, footer)...)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(out)
}

// renderLegend draws one colored swatch and label per series.
func renderLegend(series []Series, width int) string {
	items := lo.Map(series, func(s Series, _ int) string {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(s.StrokeColor)).Render("■")
		return swatch + " " + s.Label
	})
	line := strings.Join(items, "  ")
	if lipgloss.Width(line) <= width {
		return line
	}
	// Stack entries when they do not fit on one line.
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderPlaceholder centers the no-data notice in the plot area.
func renderPlaceholder(width, height int) string {
	if height < 1 {
		height = 1
	}
	lines := util.Wrap(PlaceholderText, max(width-4, 1))
	text := placeholderStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderPlot draws every non-empty series as a line.
func renderPlot(series []Series, width, height int) string {
	filled := lo.Filter(series, func(s Series, _ int) bool { return !s.IsEmpty() })
	data := lo.Map(filled, func(s Series, _ int) []float64 { return s.Points })
	colors := lo.Map(filled, func(s Series, _ int) asciigraph.AnsiColor {
		if c, ok := plotColors[strings.ToUpper(s.StrokeColor)]; ok {
			return c
		}
		return asciigraph.Default
	})

	// asciigraph reserves room on the left for the axis labels.
	plotWidth := max(width-12, 8)
	plotHeight := max(height-1, 2)

	return asciigraph.PlotMany(data,
		asciigraph.Width(plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(colors...),
	)
}
