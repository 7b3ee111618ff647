// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"
	"sync"
)

// =============================================================================
// REPLY SCOPE (THREAD-SAFE)
// =============================================================================

// replyScope owns the context every pending reply derives from.
// Canceling it stops all reply timers at once.
// Must be used as a pointer so Bubble Tea model copies share one mutex.
type replyScope struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// newReplyScope creates a live scope.
func newReplyScope() *replyScope {
	ctx, cancel := context.WithCancel(context.Background())
	return &replyScope{ctx: ctx, cancel: cancel}
}

// context returns the scope context.
func (s *replyScope) context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// close cancels the scope. Safe to call multiple times.
func (s *replyScope) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
