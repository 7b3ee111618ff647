// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the forecast TUI.
//
// # Components
//
//   - Header: title bar with the backend connection badge
//   - ChartPanel: bordered frame that hosts the forecast chart
//   - StatusBar: reply state, active policy and key hints
//   - HelpOverlay: key reference rendered from markdown with glamour
//
// Every component takes a *styles.Theme and renders to a string from View.
package components
