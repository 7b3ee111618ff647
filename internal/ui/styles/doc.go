// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the forecast TUI.
//
// Colors are lipgloss.AdaptiveColor values so one palette serves light and
// dark terminals. Theme collects the styles every component renders with:
//
//	theme := styles.NewTheme("auto")
//	theme.SetSize(width, height)
//	header := theme.Header.Render(theme.HeaderTitle.Render("Wynn Resort Forecast AI"))
package styles
