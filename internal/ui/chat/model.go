// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/forecast-tui/internal/chart"
	"github.com/jeranaias/forecast-tui/internal/echo"
	"github.com/jeranaias/forecast-tui/internal/model"
	"github.com/jeranaias/forecast-tui/internal/ui/components"
	"github.com/jeranaias/forecast-tui/internal/ui/styles"
)

// InputPlaceholder is shown in the empty message field.
const InputPlaceholder = "Type a message..."

// noticeDuration is how long status notices stay visible.
const noticeDuration = 3 * time.Second

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the root Bubble Tea model: chat panel on one side, forecast
// chart on the other. The message list and composer are mutated only in Update.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	layout layout

	// Chat state
	messages     *model.MessageList
	composer     *model.Composer
	lastRevision uint64

	// Replies
	responder *echo.Responder
	scope     *replyScope

	// Chart
	charts *chart.Host

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	help     help.Model
	spinning bool

	header      *components.Header
	chartPanel  *components.ChartPanel
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay

	// Key bindings
	keyMap KeyMap

	// Overlay and status
	showHelp  bool
	showHints bool
	noticeSeq int

	closed bool
}

// Options configures a chat Model.
type Options struct {
	// Theme for all components. Defaults to an auto-detected theme.
	Theme *styles.Theme

	// Responder answers submissions. Defaults to echo.New(echo.Options{}).
	Responder *echo.Responder

	// Chart is the forecast chart configuration. Defaults to chart.DefaultConfig().
	Chart *chart.Config

	// ShowHints shows key help in the status bar.
	ShowHints bool
}

// New creates a chat model.
func New(opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeAuto)
	}
	responder := opts.Responder
	if responder == nil {
		responder = echo.New(echo.Options{})
	}
	chartCfg := chart.DefaultConfig()
	if opts.Chart != nil {
		chartCfg = *opts.Chart
	}

	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		theme:       theme,
		messages:    model.NewMessageList(),
		composer:    model.NewComposer(),
		responder:   responder,
		scope:       newReplyScope(),
		charts:      chart.NewHost(chartCfg),
		viewport:    viewport.New(0, 0),
		input:       ti,
		spinner:     sp,
		help:        help.New(),
		header:      components.NewHeader(theme),
		chartPanel:  components.NewChartPanel(theme),
		statusBar:   components.NewStatusBar(theme),
		helpOverlay: components.NewHelpOverlay(theme),
		keyMap:      DefaultKeyMap(),
		showHints:   opts.ShowHints,
	}
	m.applyTheme(theme)
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case echo.ReplyMsg:
		return m.handleReply(msg)

	case echo.ReplyCanceledMsg:
		return m, nil

	case spinner.TickMsg:
		if m.closed || m.responder.Pending() == 0 {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CopyResultMsg:
		if msg.Err != nil {
			log.Printf("WARNING: clipboard copy failed: %v", msg.Err)
			cmd := m.notify("Clipboard unavailable", true)
			return m, cmd
		}
		cmd := m.notify("Copied last reply", false)
		return m, cmd

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.statusBar.SetNotice("", false)
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return m.renderChat()
}

// =============================================================================
// HANDLERS
// =============================================================================

// handleResize recomputes the layout and mounts or resizes the chart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.layout = computeLayout(m.theme.GetLayoutMode(), msg.Width, msg.Height)

	m.header.SetWidth(m.width)
	m.statusBar.Width = m.width
	m.help.Width = m.width
	m.helpOverlay.SetSize(m.width, m.height)
	m.chartPanel.SetSize(m.layout.chartWidth, m.layout.chartHeight)

	m.viewport.Width = m.layout.chatWidth
	m.viewport.Height = m.layout.viewportHeight
	m.input.Width = max(m.layout.chatWidth-lenPrompt-sendButtonWidth-2, 1)

	if !m.closed {
		m.syncChart()
	}
	m.refreshViewport(true)
	return m, nil
}

// syncChart mounts the chart on the first usable size and resizes it after.
func (m *Model) syncChart() {
	surface := m.chartPanel.Surface()

	if w := m.charts.Widget(); w != nil {
		if err := w.Resize(surface); err != nil && !errors.Is(err, chart.ErrNoSurface) {
			log.Printf("CHART: resize failed: %v", err)
		}
		return
	}
	if _, err := m.charts.Mount(surface); err != nil {
		// Rendered as a placeholder until a usable size arrives.
		return
	}
	log.Printf("CHART: mounted %dx%d", surface.Width, surface.Height)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Help, enter and esc close the overlay.
		if key.Matches(msg, m.keyMap.Help) || key.Matches(msg, m.keyMap.Submit) || msg.Type == tea.KeyEsc {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keyMap.Quit) {
			m.Teardown()
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.Teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit), key.Matches(msg, m.keyMap.Send):
		return m.submit()

	case key.Matches(msg, m.keyMap.Help) && (msg.Type == tea.KeyF1 || m.input.Value() == ""):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keyMap.Copy):
		return m, m.copyLastReply()

	case key.Matches(msg, m.keyMap.PageUp), key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.handleTyping(msg)
}

// handleReply appends an accepted reply. Stale replies are dropped.
func (m Model) handleReply(msg echo.ReplyMsg) (tea.Model, tea.Cmd) {
	if m.closed || !m.responder.Accept(msg) {
		return m, nil
	}
	m.messages.Append(msg.Message)
	m.refreshViewport(false)
	return m, nil
}

// handleConfigReloaded applies a new reply policy and theme.
func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		cmd := m.notify("Config reload failed: "+msg.Err.Error(), true)
		return m, cmd
	}

	if msg.Policy != "" && msg.Policy != m.responder.Policy() {
		m.responder.SetPolicy(msg.Policy)
		log.Printf("ECHO: reply policy set to %s", msg.Policy)
	}
	if msg.Theme != "" && msg.Theme != m.theme.Mode {
		theme := styles.NewTheme(msg.Theme)
		theme.SetSize(m.width, m.height)
		m.applyTheme(theme)
		m.refreshViewport(true)
	}
	m.showHints = msg.ShowHints
	cmd := m.notify("Config reloaded", false)
	return m, cmd
}

// copyLastReply copies the most recent response to the clipboard.
func (m Model) copyLastReply() tea.Cmd {
	last, ok := m.messages.LastOfKind(model.KindResponse)
	if !ok {
		return nil
	}
	text := last.Text
	return func() tea.Msg {
		return CopyResultMsg{Err: copyToClipboard(text)}
	}
}

// notify shows a status notice and schedules its removal.
func (m *Model) notify(text string, isError bool) tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	m.statusBar.SetNotice(text, isError)
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// applyTheme points every component at theme.
func (m *Model) applyTheme(theme *styles.Theme) {
	m.theme = theme
	m.header.SetTheme(theme)
	m.chartPanel.SetTheme(theme)
	m.statusBar.SetTheme(theme)
	m.helpOverlay.SetTheme(theme)

	m.input.PromptStyle = theme.InputPrompt
	m.input.PlaceholderStyle = theme.InputPlaceholder
	m.spinner.Style = theme.Spinner
	m.help.Styles.ShortKey = theme.ShortcutKey
	m.help.Styles.ShortDesc = theme.ShortcutDesc
}

// =============================================================================
// LIFECYCLE
// =============================================================================

// Teardown cancels pending replies and disposes the chart.
// After Teardown no reply is ever appended. Safe to call twice.
func (m *Model) Teardown() {
	if m.closed {
		return
	}
	m.closed = true
	m.scope.close()
	m.responder.Close()
	m.charts.Dispose()
	log.Printf("CHAT: torn down with %d message(s)", m.messages.Len())
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns the current message list projection.
func (m Model) Messages() []model.ChatMessage {
	return m.messages.Messages()
}

// InputValue returns the text in the message field.
func (m Model) InputValue() string {
	return m.input.Value()
}

// Charts returns the chart host.
func (m Model) Charts() *chart.Host {
	return m.charts
}

// Responder returns the reply scheduler.
func (m Model) Responder() *echo.Responder {
	return m.responder
}

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool {
	return m.showHelp
}

// Closed reports whether Teardown ran.
func (m Model) Closed() bool {
	return m.closed
}
