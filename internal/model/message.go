// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat panel.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind identifies who produced a chat message.
type Kind string

const (
	KindUser     Kind = "user"
	KindResponse Kind = "system-response"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// DisplayName returns a human-readable sender name for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindUser:
		return "You"
	case KindResponse:
		return "Forecast AI"
	default:
		return string(k)
	}
}

// =============================================================================
// CHAT MESSAGE TYPE
// =============================================================================

// WelcomeText seeds every new message list.
const WelcomeText = "Welcome to Wynn Resort Forecast AI! (Not connected - skeleton only)"

// ChatMessage is a single immutable entry in the message list.
// Values are passed by copy; nothing in the package mutates one after creation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage creates a message with a generated ID.
func NewMessage(kind Kind, text string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Kind:      kind,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewUserMessage creates a user message.
func NewUserMessage(text string) ChatMessage {
	return NewMessage(KindUser, text)
}

// NewResponseMessage creates a system-response message.
func NewResponseMessage(text string) ChatMessage {
	return NewMessage(KindResponse, text)
}

// IsUser reports whether the message was typed by the user.
func (m ChatMessage) IsUser() bool {
	return m.Kind == KindUser
}
