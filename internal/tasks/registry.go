// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides cancellable handles for delayed work.
package tasks

import (
	"context"
	"log"
	"sync"
	"time"
)

// =============================================================================
// TASK REGISTRY
// =============================================================================

// Registry tracks pending tasks by ID with thread-safe operations.
// Tasks leave the registry when they fire or are canceled.
type Registry struct {
	// pending maps task ID to task
	pending map[string]*Task

	// order keeps scheduling order for Pending()
	order []string

	mu sync.Mutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pending: make(map[string]*Task),
	}
}

// =============================================================================
// TASK MANAGEMENT
// =============================================================================

// Schedule registers a new pending task due after delay.
// The task context derives from parent.
func (r *Registry) Schedule(parent context.Context, description string, delay time.Duration) *Task {
	task := newTask(parent, description, delay)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[task.ID] = task
	r.order = append(r.order, task.ID)
	return task
}

// Fire marks a task fired and removes it.
// Returns true only when the task was still pending.
func (r *Registry) Fire(id string) bool {
	task := r.take(id)
	if task == nil {
		return false
	}
	return task.fire()
}

// Cancel cancels a pending task and removes it.
// Returns false for unknown or already finished tasks.
func (r *Registry) Cancel(id string) bool {
	task := r.take(id)
	if task == nil {
		return false
	}
	if !task.Cancel() {
		return false
	}
	log.Printf("TASKS: canceled %s (%s)", task.Description, task.ID)
	return true
}

// CancelAll cancels every pending task and returns how many were canceled.
func (r *Registry) CancelAll() int {
	r.mu.Lock()
	tasks := make([]*Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.pending[id])
	}
	r.pending = make(map[string]*Task)
	r.order = nil
	r.mu.Unlock()

	count := 0
	for _, task := range tasks {
		if task.Cancel() {
			count++
		}
	}
	if count > 0 {
		log.Printf("TASKS: canceled %d pending task(s)", count)
	}
	return count
}

// Pending returns the pending tasks in scheduling order.
func (r *Registry) Pending() []*Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.pending[id])
	}
	return out
}

// PendingCount returns the number of pending tasks.
func (r *Registry) PendingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// take removes a task from the registry and returns it, or nil if unknown.
func (r *Registry) take(id string) *Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.pending[id]
	if !ok {
		return nil
	}
	delete(r.pending, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return task
}
