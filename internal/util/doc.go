// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and file helpers shared by the TUI.
//
// String helpers are display-width aware (github.com/mattn/go-runewidth) so
// panels line up when messages contain CJK text or emoji.
//
//	title := util.TruncateWidth(heading, 30)
//	lines := util.Wrap(message, 40)
//
// AtomicWriteFile writes through a temp file and rename so a crash never
// leaves a half-written config behind.
package util
