// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides cancellable handles for delayed work.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a task is moved out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// =============================================================================
// TASK STATUS
// =============================================================================

// Status represents the current state of a scheduled task.
type Status string

const (
	// StatusPending indicates the task is waiting for its due time
	StatusPending Status = "Pending"

	// StatusFired indicates the task ran and its result was delivered
	StatusFired Status = "Fired"

	// StatusCanceled indicates the task was canceled before firing
	StatusCanceled Status = "Canceled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusFired || s == StatusCanceled
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task is a handle to one piece of delayed work.
type Task struct {
	// ID is a unique identifier for this task
	ID string

	// Description is a human-readable label used in logs
	Description string

	// Due is when the task is expected to fire
	Due time.Time

	status Status
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
}

// newTask creates a pending task whose context derives from parent.
func newTask(parent context.Context, description string, delay time.Duration) *Task {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Task{
		ID:          uuid.New().String(),
		Description: description,
		Due:         time.Now().Add(delay),
		status:      StatusPending,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// =============================================================================
// TASK METHODS
// =============================================================================

// Status returns the current status (thread-safe).
func (t *Task) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Context is canceled when the task is canceled or its parent context ends.
func (t *Task) Context() context.Context {
	return t.ctx
}

// SetStatus updates the status.
// Valid transitions: Pending -> Fired | Canceled. Setting the same status is a no-op.
func (t *Task) SetStatus(status Status) error {
	_, err := t.transition(status)
	return err
}

// Cancel cancels a pending task. Returns false if it already fired or was canceled.
func (t *Task) Cancel() bool {
	changed, _ := t.transition(StatusCanceled)
	return changed
}

// fire marks a pending task fired. Returns false if it was canceled or already fired.
func (t *Task) fire() bool {
	changed, _ := t.transition(StatusFired)
	return changed
}

// transition applies a status change and reports whether anything changed.
// Reaching a terminal state releases the task context.
func (t *Task) transition(to Status) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.status == to {
		return false, nil
	}
	if t.status != StatusPending {
		return false, fmt.Errorf("%w from %s to %s", ErrInvalidTransition, t.status, to)
	}
	t.status = to
	t.cancel()
	return true, nil
}
