// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/forecast-tui/internal/model"
	"github.com/jeranaias/forecast-tui/internal/ui/styles"
	"github.com/jeranaias/forecast-tui/internal/util"
)

// =============================================================================
// LAYOUT
// =============================================================================

const (
	headerHeight    = 1
	statusBarHeight = 1
	inputAreaHeight = 2 // separator + input line

	lenPrompt       = 2 // "> "
	sendButtonWidth = 8 // " Send " plus padding

	minChartHeight = 8
	maxBubbleWidth = 72
)

// layout holds the computed panel sizes.
type layout struct {
	mode           styles.LayoutMode
	chatWidth      int
	chatHeight     int
	viewportHeight int
	chartWidth     int
	chartHeight    int
}

// computeLayout splits the screen between chat and chart.
// Side by side the chart takes 45% of the width; stacked it takes 40% of the height.
func computeLayout(mode styles.LayoutMode, width, height int) layout {
	body := max(height-headerHeight-statusBarHeight, 2)
	l := layout{mode: mode}

	switch mode {
	case styles.LayoutSideBySide:
		l.chartWidth = width * 45 / 100
		l.chatWidth = width - l.chartWidth
		l.chartHeight = body
		l.chatHeight = body
	default:
		l.chartWidth = width
		l.chatWidth = width
		l.chartHeight = max(body*2/5, min(minChartHeight, body/2))
		l.chatHeight = body - l.chartHeight
	}

	l.chatWidth = max(l.chatWidth, 1)
	l.viewportHeight = max(l.chatHeight-inputAreaHeight, 1)
	return l
}

// =============================================================================
// MAIN RENDER
// =============================================================================

// renderChat renders the whole screen.
func (m Model) renderChat() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.helpOverlay.View()
	}

	header := m.header.View()
	chatPanel := m.renderChatPanel()
	chartPanel := m.renderChartPanel()
	status := m.renderStatusBar()

	var body string
	if m.layout.mode == styles.LayoutSideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, chartPanel)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, chatPanel, chartPanel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderChatPanel renders the message viewport above the input line.
func (m Model) renderChatPanel() string {
	messages := lipgloss.NewStyle().
		Width(m.layout.chatWidth).
		Height(m.layout.viewportHeight).
		MaxHeight(m.layout.viewportHeight).
		Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, messages, m.renderInput())
}

// renderInput renders the separator, the text field and the Send button.
func (m Model) renderInput() string {
	button := m.theme.SendButton.Render("Send")
	field := m.input.View()

	gap := max(m.layout.chatWidth-lipgloss.Width(field)-lipgloss.Width(button), 1)
	line := field + strings.Repeat(" ", gap) + button

	return m.theme.InputContainer.
		Width(m.layout.chatWidth).
		MaxWidth(m.layout.chatWidth).
		Render(line)
}

// renderChartPanel renders the chart, or a placeholder when none is mounted.
func (m Model) renderChartPanel() string {
	var body string
	if w := m.charts.Widget(); w != nil {
		body = w.Render()
	}
	return m.chartPanel.View(body, "Chart unavailable: window too small")
}

// renderStatusBar renders the bottom bar.
func (m Model) renderStatusBar() string {
	m.statusBar.Pending = m.responder.Pending()
	m.statusBar.Spinner = m.spinner.View()
	m.statusBar.Policy = string(m.responder.Policy())
	m.statusBar.Hints = ""
	if m.showHints {
		m.statusBar.Hints = m.help.View(m.keyMap)
	}
	return m.statusBar.View()
}

// =============================================================================
// MESSAGE LIST
// =============================================================================

// refreshViewport re-renders the message list into the viewport and
// scrolls to the latest entry. Without force it only acts when the list
// changed since the last call.
func (m *Model) refreshViewport(force bool) {
	rev := m.messages.Revision()
	if !force && rev == m.lastRevision {
		return
	}
	m.lastRevision = rev
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// renderMessages renders every message, oldest first.
func (m Model) renderMessages() string {
	width := m.layout.chatWidth
	if width <= 0 {
		return ""
	}
	msgs := m.messages.Messages()
	blocks := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	return strings.Join(blocks, "\n")
}

// renderMessage renders one message bubble with its sender line.
// User messages sit on the right, responses on the left.
func (m Model) renderMessage(msg model.ChatMessage, width int) string {
	// Bubble border and padding take four cells.
	bubbleWidth := min(max(width-6, 10), maxBubbleWidth)
	textWidth := bubbleWidth - 4

	text := strings.Join(util.Wrap(msg.Text, textWidth), "\n")

	style := m.theme.ResponseBubble
	align := lipgloss.Left
	if msg.IsUser() {
		style = m.theme.UserBubble
		align = lipgloss.Right
	}

	label := m.theme.SenderLabel.Render(msg.Kind.DisplayName()) + " " +
		m.theme.Timestamp.Render(formatTimestamp(msg.CreatedAt))
	bubble := style.Render(text)

	block := lipgloss.JoinVertical(align, label, bubble)
	return lipgloss.PlaceHorizontal(width, align, block)
}
