// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// INPUT HANDLING
// =============================================================================

// handleTyping forwards a key to the text field and mirrors the result
// into the composer.
func (m Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.composer.SetText(m.input.Value())
	return m, cmd
}

// submit is the single path for Enter and the Send action.
// An empty or whitespace-only field does nothing and schedules no reply.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	m.composer.SetText(m.input.Value())
	msg, ok := m.composer.Submit()
	if !ok {
		return m, nil
	}
	m.input.Reset()

	m.messages.Append(msg)
	m.refreshViewport(false)

	reply := m.responder.OnUserMessage(m.scope.context())
	if reply == nil {
		return m, nil
	}
	if m.spinning {
		return m, reply
	}
	m.spinning = true
	return m, tea.Batch(reply, m.spinner.Tick)
}
