// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/ui/components"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// pollInterval is how often the dashboard re-polls the backend while
// it is the active view.
const pollInterval = 5 * time.Second

// =============================================================================
// MESSAGES
// =============================================================================

// statsResultMsg carries one completed poll. Health and stats are
// fetched together; either may have failed independently.
type statsResultMsg struct {
	health *api.HealthResponse
	stats  *api.SystemStats
	err    error
}

// pollTickMsg triggers the next poll.
type pollTickMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the system dashboard.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	health  *api.HealthResponse
	stats   *api.SystemStats
	lastErr *components.ErrorBox

	polledAt time.Time
	polling  bool

	width  int
	height int
}

// New creates the dashboard model.
func New(client *api.Client, theme *styles.Theme) Model {
	return Model{
		client: client,
		theme:  theme,
		width:  80,
		height: 24,
	}
}

// Init issues the first poll.
func (m *Model) Init() tea.Cmd {
	return m.poll()
}

// Connected reports whether the last poll reached the backend.
func (m Model) Connected() bool {
	return m.health != nil && m.lastErr == nil
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) poll() tea.Cmd {
	if m.polling {
		return nil
	}
	m.polling = true

	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		health, err := client.Health(ctx)
		if err != nil {
			return statsResultMsg{err: err}
		}
		stats, err := client.SystemStats(ctx)
		if err != nil {
			// Health answered, stats did not. Keep the health
			// signal and surface the stats failure.
			return statsResultMsg{health: health, err: err}
		}
		return statsResultMsg{health: health, stats: stats}
	}
}

func scheduleTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the dashboard view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			cmd := m.poll()
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case pollTickMsg:
		cmd := m.poll()
		return m, cmd

	case statsResultMsg:
		m.polling = false
		m.polledAt = time.Now()
		if msg.err != nil {
			box := components.NewErrorBox(msg.err)
			m.lastErr = &box
			// Stale numbers stay on screen under the banner.
			if msg.health != nil {
				m.health = msg.health
			}
			return m, scheduleTick()
		}
		m.lastErr = nil
		m.health = msg.health
		m.stats = msg.stats
		return m, scheduleTick()
	}

	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the health card and the stats grid.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("MINI S"))
	if !m.polledAt.IsZero() {
		b.WriteString(" ")
		b.WriteString(m.theme.HeaderSubtitle.Render("polled " + m.polledAt.Format("15:04:05")))
	}
	b.WriteString("\n\n")

	if m.lastErr != nil {
		b.WriteString(m.lastErr.View(m.theme, m.width))
		b.WriteString("\n\n")
	}

	if m.health != nil {
		status := m.theme.StatusOK.Render(styles.StatusIndicators.Success + " " + m.health.Status)
		b.WriteString(status)
		if m.health.Message != "" {
			b.WriteString("  ")
			b.WriteString(m.theme.HeaderSubtitle.Render(m.health.Message))
		}
		b.WriteString("\n\n")
	} else if m.lastErr == nil {
		b.WriteString(m.theme.ThinkingText.Render("Contacting backend..."))
		b.WriteString("\n\n")
	}

	if m.stats != nil {
		b.WriteString(m.statsGrid())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutKey.Render("r") + " " + m.theme.ShortcutDesc.Render("poll now"))
	return b.String()
}

func (m Model) statsGrid() string {
	rows := [][2]string{
		{"Agents", strconv.Itoa(m.stats.TotalAgents)},
		{"Active agents", strconv.Itoa(m.stats.ActiveAgents)},
		{"Models", strconv.Itoa(m.stats.AvailableModels)},
		{"Tools", strconv.Itoa(m.stats.AvailableTools)},
		{"Queued messages", strconv.Itoa(m.stats.TotalQueuedMessages)},
		{"Conversations", strconv.Itoa(m.stats.ActiveConversations)},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(m.theme.StatsLabel.Render(row[0]))
		b.WriteString(m.theme.StatsValue.Render(row[1]))
		b.WriteString("\n")
	}
	return m.theme.StatsBox.Render(strings.TrimRight(b.String(), "\n"))
}
