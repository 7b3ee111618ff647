// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea messages handled by the chat view that
// do not come from the echo package.
package chat

import (
	"github.com/jeranaias/forecast-tui/internal/echo"
)

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg carries settings from a reloaded config file.
// Err is set when the new file failed to load; the other fields are then ignored.
type ConfigReloadedMsg struct {
	Policy    echo.Policy
	Theme     string
	ShowHints bool
	Err       error
}

// =============================================================================
// CLIPBOARD MESSAGES
// =============================================================================

// CopyResultMsg reports the outcome of a clipboard copy.
type CopyResultMsg struct {
	Err error
}

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// clearNoticeMsg clears the status bar notice if it is still the one with seq.
type clearNoticeMsg struct {
	seq int
}
