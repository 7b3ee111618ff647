// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package echo answers every user message with a fixed acknowledgment
// after a short delay.
package echo

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/forecast-tui/internal/model"
	"github.com/jeranaias/forecast-tui/internal/tasks"
)

// ReplyText is the only text the responder ever produces.
const ReplyText = "Backend not connected. This is just the UI skeleton for the tutorial."

// DefaultDelay is the time between a submission and its reply.
const DefaultDelay = 500 * time.Millisecond

// =============================================================================
// POLICY
// =============================================================================

// Policy decides what happens to a pending reply when another message arrives.
type Policy string

const (
	// PolicyPerSubmission schedules one independent reply per submission.
	PolicyPerSubmission Policy = "per-submission"

	// PolicySingleInflight cancels any pending reply before scheduling a new one.
	PolicySingleInflight Policy = "single-inflight"
)

// ParsePolicy parses a policy name. The empty string maps to PolicyPerSubmission.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyPerSubmission:
		return PolicyPerSubmission, nil
	case PolicySingleInflight:
		return PolicySingleInflight, nil
	default:
		return "", fmt.Errorf("unknown reply policy %q (want %s or %s)", s, PolicyPerSubmission, PolicySingleInflight)
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

// ReplyMsg carries a reply whose delay elapsed.
// The receiver must call Responder.Accept before appending it.
type ReplyMsg struct {
	TaskID  string
	Message model.ChatMessage
}

// ReplyCanceledMsg reports that a pending reply was canceled.
type ReplyCanceledMsg struct {
	TaskID string
}

// =============================================================================
// RESPONDER
// =============================================================================

// Options configures a Responder.
type Options struct {
	// Delay before a reply is delivered. Zero means DefaultDelay.
	Delay time.Duration

	// Policy for overlapping submissions. Empty means PolicyPerSubmission.
	Policy Policy

	// After returns a channel that fires after d. Defaults to time.After.
	After func(d time.Duration) <-chan time.Time
}

// Responder schedules canned replies as cancellable tasks.
type Responder struct {
	delay  time.Duration
	policy Policy
	after  func(time.Duration) <-chan time.Time

	registry *tasks.Registry
	closed   bool
	mu       sync.Mutex
}

// New creates a responder.
func New(opts Options) *Responder {
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Policy == "" {
		opts.Policy = PolicyPerSubmission
	}
	if opts.After == nil {
		opts.After = time.After
	}
	return &Responder{
		delay:    opts.Delay,
		policy:   opts.Policy,
		after:    opts.After,
		registry: tasks.NewRegistry(),
	}
}

// Policy returns the active policy.
func (r *Responder) Policy() Policy {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.policy
}

// SetPolicy switches the policy for future submissions.
func (r *Responder) SetPolicy(p Policy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.policy = p
}

// Delay returns the configured reply delay.
func (r *Responder) Delay() time.Duration {
	return r.delay
}

// Pending returns the number of replies still waiting to fire.
func (r *Responder) Pending() int {
	return r.registry.PendingCount()
}

// OnUserMessage schedules a reply to a user submission and returns the
// command that delivers it. The reply never depends on what the user typed.
// Returns nil after Close.
func (r *Responder) OnUserMessage(ctx context.Context) tea.Cmd {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	policy := r.policy
	r.mu.Unlock()

	if policy == PolicySingleInflight {
		if n := r.registry.CancelAll(); n > 0 {
			log.Printf("ECHO: superseded %d pending reply(s)", n)
		}
	}

	task := r.registry.Schedule(ctx, "echo reply", r.delay)
	timer := r.after(r.delay)

	return func() tea.Msg {
		select {
		case <-timer:
			return ReplyMsg{
				TaskID:  task.ID,
				Message: model.NewResponseMessage(ReplyText),
			}
		case <-task.Context().Done():
			r.registry.Cancel(task.ID)
			return ReplyCanceledMsg{TaskID: task.ID}
		}
	}
}

// Accept marks a reply delivered. It returns false when the reply's task
// was canceled in the meantime; such replies must be dropped.
func (r *Responder) Accept(msg ReplyMsg) bool {
	return r.registry.Fire(msg.TaskID)
}

// Close cancels every pending reply. Later submissions get no reply.
func (r *Responder) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	if n := r.registry.CancelAll(); n > 0 {
		log.Printf("ECHO: dropped %d pending reply(s) on close", n)
	}
}
