// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and file helpers shared by the TUI.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: all helpers count display cells, never bytes.

// TruncateWidth truncates s to fit maxWidth terminal cells.
// Double-width characters count as two cells.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// Wrap breaks s into lines no wider than width cells.
// Words longer than width are split. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur strings.Builder
		curWidth := 0
		for _, w := range words {
			for runewidth.StringWidth(w) > width {
				if curWidth > 0 {
					lines = append(lines, cur.String())
					cur.Reset()
					curWidth = 0
				}
				head := runewidth.Truncate(w, width, "")
				if head == "" {
					head = string([]rune(w)[:1])
				}
				lines = append(lines, head)
				w = w[len(head):]
			}
			ww := runewidth.StringWidth(w)
			switch {
			case ww == 0:
				continue
			case curWidth == 0:
				cur.WriteString(w)
				curWidth = ww
			case curWidth+1+ww <= width:
				cur.WriteByte(' ')
				cur.WriteString(w)
				curWidth += 1 + ww
			default:
				lines = append(lines, cur.String())
				cur.Reset()
				cur.WriteString(w)
				curWidth = ww
			}
		}
		if curWidth > 0 {
			lines = append(lines, cur.String())
		}
	}
	return lines
}
