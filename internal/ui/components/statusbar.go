// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/minis-tui/internal/ui/styles"
	"github.com/jeranaias/minis-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusLoading
	StatusThinking
	StatusError
	StatusIdle
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusLoading:
		return "Loading..."
	case StatusThinking:
		return "Thinking..."
	case StatusError:
		return "Error"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return styles.StatusIndicators.Success
	case StatusLoading, StatusThinking:
		return styles.StatusIndicators.Pending
	case StatusError:
		return styles.StatusIndicators.Error
	case StatusIdle:
		return "-"
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar: backend address, connectivity,
// active view, and keyboard shortcuts.
type StatusBar struct {
	ServerURL     string
	Connected     bool
	ViewName      string
	Status        Status
	Width         int
	ShowShortcuts bool

	theme *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status:        StatusIdle,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
}

// SetConnected updates the backend connectivity indicator.
func (s *StatusBar) SetConnected(connected bool) {
	s.Connected = connected
}

// SetView updates the active view name.
func (s *StatusBar) SetView(name string) {
	s.ViewName = name
}

// View renders the status bar.
func (s *StatusBar) View() string {
	var left strings.Builder

	if s.Connected {
		left.WriteString(s.theme.StatusOK.Render(styles.StatusIndicators.Active))
	} else {
		left.WriteString(s.theme.StatusError.Render(styles.StatusIndicators.Error))
	}
	left.WriteString(" ")
	left.WriteString(s.ServerURL)

	if s.ViewName != "" {
		left.WriteString(" | ")
		left.WriteString(s.ViewName)
	}

	left.WriteString(" | ")
	left.WriteString(s.Status.Icon())
	left.WriteString(" ")
	left.WriteString(s.Status.String())

	right := ""
	if s.ShowShortcuts {
		right = s.shortcuts()
	}

	leftStr := left.String()
	gap := s.Width - lipgloss.Width(leftStr) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Narrow terminal: drop the shortcuts before truncating the
		// connectivity side.
		right = ""
		gap = s.Width - lipgloss.Width(leftStr) - 2
		if gap < 0 {
			leftStr = util.TruncateWidth(leftStr, s.Width-2)
			gap = 0
		}
	}

	return s.theme.StatusBar.Width(s.Width).Render(
		leftStr + strings.Repeat(" ", gap) + right,
	)
}

func (s *StatusBar) shortcuts() string {
	pairs := [][2]string{
		{"1-3", "views"},
		{"r", "refresh"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, s.theme.ShortcutKey.Render(p[0])+" "+s.theme.ShortcutDesc.Render(p[1]))
	}
	return strings.Join(parts, "  ")
}
