// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart draws the resort operations forecast chart.
package chart

import (
	"errors"
	"fmt"
	"log"
	"sync"
)

var (
	// ErrNoSurface is returned when mounting without a usable drawing area.
	ErrNoSurface = errors.New("chart: no drawing surface")

	// ErrUnknownSeries is returned by Update for a label that is not charted.
	ErrUnknownSeries = errors.New("chart: unknown series")

	// ErrDisposed is returned when using a widget after Dispose.
	ErrDisposed = errors.New("chart: widget disposed")
)

// Surface is the terminal region a widget draws into.
type Surface struct {
	Width  int
	Height int
}

// usable reports whether s can be drawn on.
func (s *Surface) usable() bool {
	return s != nil && s.Width > 0 && s.Height > 0
}

// =============================================================================
// WIDGET
// =============================================================================

// Widget is one mounted chart instance.
type Widget struct {
	cfg      Config
	surface  Surface
	disposed bool
	mu       sync.RWMutex
}

// Mount creates a widget bound to surface.
// A nil or zero-sized surface yields ErrNoSurface.
func Mount(surface *Surface, cfg Config) (*Widget, error) {
	if !surface.usable() {
		return nil, ErrNoSurface
	}
	if len(cfg.Series) == 0 {
		cfg.Series = DefaultSeries()
	}
	series := make([]Series, len(cfg.Series))
	for i, s := range cfg.Series {
		series[i] = s.clone()
	}
	cfg.Series = series
	cfg.Labels = append([]string(nil), cfg.Labels...)

	return &Widget{cfg: cfg, surface: *surface}, nil
}

// Config returns a copy of the widget configuration.
func (w *Widget) Config() Config {
	w.mu.RLock()
	defer w.mu.RUnlock()

	cfg := w.cfg
	cfg.Series = w.seriesLocked()
	cfg.Labels = append([]string(nil), w.cfg.Labels...)
	return cfg
}

// Series returns copies of the charted series in display order.
func (w *Widget) Series() []Series {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.seriesLocked()
}

func (w *Widget) seriesLocked() []Series {
	out := make([]Series, len(w.cfg.Series))
	for i, s := range w.cfg.Series {
		out[i] = s.clone()
	}
	return out
}

// Surface returns the current drawing area.
func (w *Widget) Surface() Surface {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.surface
}

// Resize moves the widget to a new drawing area.
func (w *Widget) Resize(surface *Surface) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return ErrDisposed
	}
	if !surface.usable() {
		return ErrNoSurface
	}
	w.surface = *surface
	return nil
}

// Update replaces the points of the series with the given label.
// Points are hourly values starting at hour 1; extra points beyond the
// horizon are dropped.
func (w *Widget) Update(label string, points []float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return ErrDisposed
	}
	for i := range w.cfg.Series {
		if w.cfg.Series[i].Label != label {
			continue
		}
		if w.cfg.Horizon > 0 && len(points) > w.cfg.Horizon {
			points = points[:w.cfg.Horizon]
		}
		w.cfg.Series[i].Points = append([]float64(nil), points...)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownSeries, label)
}

// Dispose releases the widget. Further Update and Resize calls fail.
// Calling Dispose twice is a no-op.
func (w *Widget) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.disposed {
		return
	}
	w.disposed = true
	log.Printf("CHART: widget disposed")
}

// Disposed reports whether Dispose was called.
func (w *Widget) Disposed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.disposed
}
