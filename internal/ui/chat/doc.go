// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the root view of the forecast TUI.
//
// The Model owns the message list and the composer and is the only place
// either is changed. Enter and Ctrl+S both go through submit. Each accepted
// submission appends a user message and asks the echo responder for a reply
// command; the reply arrives later as echo.ReplyMsg and is appended only if
// the responder still accepts it.
//
// The forecast chart is mounted through a chart.Host on the first window
// size and resized afterwards. Quitting calls Teardown, which cancels every
// pending reply and disposes the chart.
package chat
