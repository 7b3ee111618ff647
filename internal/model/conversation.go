// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat panel.
package model

// =============================================================================
// MESSAGE LIST
// =============================================================================

// MessageList is the append-only, ordered store of chat entries.
// Insertion order is display order. Entries are never removed or edited.
// Not safe for concurrent use; the owning view mutates it from Update only.
type MessageList struct {
	messages []ChatMessage
	revision uint64
}

// NewMessageList creates a list seeded with the welcome entry.
func NewMessageList() *MessageList {
	l := &MessageList{messages: make([]ChatMessage, 0, 16)}
	l.Append(NewResponseMessage(WelcomeText))
	return l
}

// Append adds a message to the end of the list. It always succeeds.
func (l *MessageList) Append(msg ChatMessage) {
	l.messages = append(l.messages, msg)
	l.revision++
}

// Messages returns a read-only projection of the list for rendering.
// The returned slice is a copy; changing it does not affect the store.
func (l *MessageList) Messages() []ChatMessage {
	out := make([]ChatMessage, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages.
func (l *MessageList) Len() int {
	return len(l.messages)
}

// Last returns the most recent message, or false if the list is empty.
func (l *MessageList) Last() (ChatMessage, bool) {
	if len(l.messages) == 0 {
		return ChatMessage{}, false
	}
	return l.messages[len(l.messages)-1], true
}

// LastOfKind returns the most recent message with the given kind.
func (l *MessageList) LastOfKind(kind Kind) (ChatMessage, bool) {
	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Kind == kind {
			return l.messages[i], true
		}
	}
	return ChatMessage{}, false
}

// Revision increments on every append. The view compares revisions to
// decide when to scroll to the latest entry.
func (l *MessageList) Revision() uint64 {
	return l.revision
}
