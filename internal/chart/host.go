// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart draws the resort operations forecast chart.
package chart

import "log"

// Host owns at most one live widget. Mounting again disposes the old one first.
type Host struct {
	cfg    Config
	widget *Widget
	mounts int
}

// NewHost creates a host that mounts widgets with cfg.
func NewHost(cfg Config) *Host {
	return &Host{cfg: cfg}
}

// Mount disposes any live widget and mounts a new one on surface.
// On ErrNoSurface the host is left without a widget.
func (h *Host) Mount(surface *Surface) (*Widget, error) {
	h.Dispose()

	w, err := Mount(surface, h.cfg)
	if err != nil {
		log.Printf("CHART: mount failed: %v", err)
		return nil, err
	}
	h.widget = w
	h.mounts++
	return w, nil
}

// Widget returns the live widget, or nil.
func (h *Host) Widget() *Widget {
	return h.widget
}

// Dispose releases the live widget, if any.
func (h *Host) Dispose() {
	if h.widget == nil {
		return
	}
	h.widget.Dispose()
	h.widget = nil
}

// Mounts returns how many widgets this host has mounted.
func (h *Host) Mounts() int {
	return h.mounts
}
