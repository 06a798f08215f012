// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logs

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/ui/components"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// logsLoadedMsg carries the raw log text. The view replaces its buffer
// wholesale on every fetch.
type logsLoadedMsg struct {
	text string
}

// logsLoadErrMsg reports a failed fetch. The previous buffer stays on
// screen under the error banner.
type logsLoadErrMsg struct {
	err error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the backend log view.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	viewport viewport.Model
	spinner  components.Spinner

	loaded  bool
	loading bool
	lastErr *components.ErrorBox

	fetchedAt time.Time

	width  int
	height int
}

// New creates the log view model.
func New(client *api.Client, theme *styles.Theme) Model {
	return Model{
		client:   client,
		theme:    theme,
		viewport: viewport.New(80, 20),
		spinner:  components.NewSpinner(),
		width:    80,
		height:   24,
	}
}

// Init starts the first log fetch.
func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 2
	m.viewport.Height = height - 6
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
}

func (m *Model) refresh() tea.Cmd {
	m.loading = true
	m.spinner.SetMessage("Fetching logs")

	client := m.client
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		text, err := client.SystemLogs(ctx)
		if err != nil {
			return logsLoadErrMsg{err: err}
		}
		return logsLoadedMsg{text: text}
	}
	return tea.Batch(m.spinner.Start(), fetch)
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the log view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			cmd := m.refresh()
			return m, cmd
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case logsLoadedMsg:
		m.loading = false
		m.loaded = true
		m.lastErr = nil
		m.fetchedAt = time.Now()
		m.spinner.Stop()
		m.viewport.SetContent(m.theme.LogText.Render(strings.TrimRight(msg.text, "\n")))
		m.viewport.GotoBottom()
		return m, nil

	case logsLoadErrMsg:
		m.loading = false
		m.spinner.Stop()
		box := components.NewErrorBox(msg.err)
		m.lastErr = &box
		return m, nil
	}

	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the log viewport with its header and shortcuts.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("Backend logs"))
	if !m.fetchedAt.IsZero() {
		b.WriteString(" ")
		b.WriteString(m.theme.HeaderSubtitle.Render("fetched " + m.fetchedAt.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(m.lastErr.View(m.theme, m.width))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && !m.loaded:
		b.WriteString(m.spinner.View(m.theme))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(m.theme.EmptyList.Render("No logs fetched yet. Press r to fetch."))
		b.WriteString("\n")
	default:
		b.WriteString(m.theme.LogViewport.Render(m.viewport.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutKey.Render("r") + " " + m.theme.ShortcutDesc.Render("refresh"))
	b.WriteString("  ")
	b.WriteString(m.theme.ShortcutKey.Render("g/G") + " " + m.theme.ShortcutDesc.Render("top/bottom"))
	return b.String()
}
