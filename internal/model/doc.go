// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat panel.
//
// # Key Types
//
//   - ChatMessage: immutable entry with kind (user or system-response) and text
//   - MessageList: append-only ordered store seeded with a welcome entry
//   - Composer: the text buffer staged in the input field
//
// # Usage
//
//	list := model.NewMessageList()
//	composer := model.NewComposer()
//	composer.SetText("hello")
//	if msg, ok := composer.Submit(); ok {
//	    list.Append(msg)
//	}
package model
