// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat panel.
package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Composer stages outgoing text before submission.
type Composer struct {
	buffer string
}

// NewComposer creates an empty composer.
func NewComposer() *Composer {
	return &Composer{}
}

// SetText replaces the buffer. Called on every keystroke.
func (c *Composer) SetText(s string) {
	c.buffer = s
}

// Text returns the current buffer.
func (c *Composer) Text() string {
	return c.buffer
}

// IsEmpty reports whether the buffer holds only whitespace.
func (c *Composer) IsEmpty() bool {
	return strings.TrimSpace(c.buffer) == ""
}

// Submit turns the buffer into a user message and clears it.
// A whitespace-only buffer is ignored: ok is false and the buffer is kept.
// The text is NFC-normalized but otherwise sent as typed.
func (c *Composer) Submit() (msg ChatMessage, ok bool) {
	if c.IsEmpty() {
		return ChatMessage{}, false
	}
	msg = NewUserMessage(norm.NFC.String(c.buffer))
	c.buffer = ""
	return msg, true
}
