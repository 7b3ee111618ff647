// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/ui/styles"
)

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestNewHeader(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))

	if h.Title != "Wynn Resort Forecast AI" {
		t.Errorf("NewHeader() Title = %q, want %q", h.Title, "Wynn Resort Forecast AI")
	}
}

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))

	for _, width := range []int{40, 80, 120} {
		h.SetWidth(width)
		out := h.View()

		if !strings.Contains(out, "Wynn Resort Forecast AI") {
			t.Errorf("width %d: header should contain the title", width)
		}
		if !strings.Contains(out, "NOT CONNECTED") {
			t.Errorf("width %d: header should show the connection badge", width)
		}
		if got := lipgloss.Width(out); got != width {
			t.Errorf("width %d: rendered width = %d", width, got)
		}
	}
}

func TestHeaderView_Narrow(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))
	h.SetWidth(20)

	out := h.View()
	if lipgloss.Width(out) > 20 {
		t.Errorf("narrow header width = %d, want <= 20", lipgloss.Width(out))
	}
}

// =============================================================================
// CHART PANEL TESTS
// =============================================================================

func TestChartPanel_Surface(t *testing.T) {
	p := NewChartPanel(styles.NewTheme("dark"))

	p.SetSize(60, 20)
	s := p.Surface()
	if s == nil || s.Width != 56 || s.Height != 17 {
		t.Errorf("Surface() = %+v, want 56x17", s)
	}

	p.SetSize(3, 3)
	if p.Surface() != nil {
		t.Error("Surface() should be nil for a tiny panel")
	}
}

func TestChartPanel_View(t *testing.T) {
	p := NewChartPanel(styles.NewTheme("dark"))
	p.SetSize(60, 12)

	out := p.View("", "Chart unavailable")
	if !strings.Contains(out, "Resort Operations Forecast") {
		t.Error("panel should contain its title")
	}
	if !strings.Contains(out, "Chart unavailable") {
		t.Error("panel should show the fallback for an empty body")
	}
	if got := lipgloss.Height(out); got != 12 {
		t.Errorf("panel height = %d, want 12", got)
	}
	if got := lipgloss.Width(out); got != 60 {
		t.Errorf("panel width = %d, want 60", got)
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusBarView(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(s *StatusBar)
		want    string
		notWant string
	}{
		{"idle", func(s *StatusBar) {}, "Ready", "Waiting"},
		{"pending", func(s *StatusBar) { s.Pending = 2 }, "Waiting for 2 reply(s)", "Ready"},
		{"notice", func(s *StatusBar) { s.SetNotice("Copied", false) }, "Copied", "Ready"},
		{"error", func(s *StatusBar) { s.SetNotice("clipboard unavailable", true) }, "[X] clipboard unavailable", ""},
		{"policy", func(s *StatusBar) { s.Policy = "single-inflight" }, "policy: single-inflight", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStatusBar(styles.NewTheme("dark"))
			s.Width = 100
			tc.setup(s)
			out := s.View()

			if !strings.Contains(out, tc.want) {
				t.Errorf("View() = %q, want it to contain %q", out, tc.want)
			}
			if tc.notWant != "" && strings.Contains(out, tc.notWant) {
				t.Errorf("View() = %q, should not contain %q", out, tc.notWant)
			}
			if got := lipgloss.Width(out); got != 100 {
				t.Errorf("rendered width = %d, want 100", got)
			}
		})
	}
}

func TestStatusBarView_DropsHintsWhenNarrow(t *testing.T) {
	s := NewStatusBar(styles.NewTheme("dark"))
	s.Width = 20
	s.Hints = "enter send • ? help • esc quit"

	out := s.View()
	if strings.Contains(out, "esc quit") {
		t.Error("hints should be dropped on a narrow bar")
	}
}

// =============================================================================
// HELP OVERLAY TESTS
// =============================================================================

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown(HelpMarkdown, "notty", 60)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "Send") || !strings.Contains(out, "Ctrl+Y") {
		t.Errorf("rendered help should list key bindings, got %q", out)
	}
}

func TestHelpMarkdown_ListsBothHelpKeys(t *testing.T) {
	out, err := RenderMarkdown(HelpMarkdown, "notty", 80)
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}
	if !strings.Contains(out, "F1") {
		t.Errorf("help should list F1, which works while typing, got %q", out)
	}
	if !strings.Contains(out, "?") {
		t.Errorf("help should list ?, got %q", out)
	}
}

func TestHelpOverlayView(t *testing.T) {
	h := NewHelpOverlay(styles.NewTheme("dark"))
	h.SetSize(100, 40)

	out := h.View()
	if !strings.Contains(out, "Copy") {
		t.Error("overlay should contain the key table")
	}
	if lipgloss.Height(out) != 40 {
		t.Errorf("overlay height = %d, want 40", lipgloss.Height(out))
	}

	// Second render hits the cache.
	if h.View() != out {
		t.Error("cached render should be stable")
	}
}
