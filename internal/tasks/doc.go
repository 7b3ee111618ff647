// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides cancellable handles for delayed work.
//
// A Task moves from Pending to exactly one of Fired or Canceled. Canceling
// a task cancels its context, so any goroutine waiting on it can stop
// without touching shared state.
//
// # Usage
//
//	reg := tasks.NewRegistry()
//	task := reg.Schedule(ctx, "echo reply", 500*time.Millisecond)
//	select {
//	case <-time.After(500 * time.Millisecond):
//	    if reg.Fire(task.ID) {
//	        // deliver result
//	    }
//	case <-task.Context().Done():
//	}
//
// Shut down:
//
//	reg.CancelAll()
package tasks
