// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chart draws the resort operations forecast chart.
package chart

import (
	"fmt"

	"github.com/samber/lo"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultHorizon is the forecast length in hours (7 days).
	DefaultHorizon = 168

	// DefaultTitle is shown above the chart until real data exists.
	DefaultTitle = "Wynn Resort 7-Day Hourly Forecast (No Data Yet)"

	// DefaultYAxisTitle labels the value axis.
	DefaultYAxisTitle = "Units / Percentage"

	// PlaceholderText is drawn in place of the plot while every series is empty.
	PlaceholderText = "Chart will display 168-hour forecast once backend is connected"
)

// Series labels, in display order.
const (
	LabelOccupancy = "Room Occupancy (%)"
	LabelCleaning  = "Cleaning Staff Needed"
	LabelSecurity  = "Security Staff Needed"
)

// =============================================================================
// SERIES
// =============================================================================

// Series is one labeled line of the chart.
type Series struct {
	Label       string
	Points      []float64
	StrokeColor string // hex, e.g. "#DAA520"
	FillColor   string // CSS rgba, kept for exporters that draw filled areas
}

// IsEmpty reports whether the series has no data points.
func (s Series) IsEmpty() bool {
	return len(s.Points) == 0
}

// clone returns a copy that shares no backing array with s.
func (s Series) clone() Series {
	s.Points = append([]float64(nil), s.Points...)
	return s
}

// DefaultSeries returns the three forecast series, each with no points.
func DefaultSeries() []Series {
	return []Series{
		{Label: LabelOccupancy, StrokeColor: "#DAA520", FillColor: "rgba(218, 165, 32, 0.1)"},
		{Label: LabelCleaning, StrokeColor: "#4169E1", FillColor: "rgba(65, 105, 225, 0.1)"},
		{Label: LabelSecurity, StrokeColor: "#DC143C", FillColor: "rgba(220, 20, 60, 0.1)"},
	}
}

// =============================================================================
// CONFIG
// =============================================================================

// Config is the static chart configuration.
type Config struct {
	Title      string
	YAxisTitle string
	Horizon    int
	Labels     []string
	Series     []Series
}

// DefaultConfig returns the configuration used by the dashboard.
// Labels hold only the first three hours, an ellipsis and the last hour.
func DefaultConfig() Config {
	return Config{
		Title:      DefaultTitle,
		YAxisTitle: DefaultYAxisTitle,
		Horizon:    DefaultHorizon,
		Labels:     []string{"Hour 1", "Hour 2", "Hour 3", "...", fmt.Sprintf("Hour %d", DefaultHorizon)},
		Series:     DefaultSeries(),
	}
}

// HourLabels returns the full list of ordinal labels "Hour 1".."Hour n".
func HourLabels(n int) []string {
	if n <= 0 {
		return nil
	}
	return lo.Times(n, func(i int) string {
		return fmt.Sprintf("Hour %d", i+1)
	})
}
