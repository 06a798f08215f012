// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/model"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// =============================================================================
// CHAT DIALOG SESSION
// =============================================================================

// chatSession is one open dialog with one agent. The dialogID tags
// every think request this session issues; a reply tagged with a
// different ID belongs to a dialog that no longer exists and is
// dropped. Closing the dialog discards the transcript — the backend
// owns all durable state.
type chatSession struct {
	agent    api.Agent
	dialogID string

	transcript *model.Transcript
	input      textinput.Model
	viewport   viewport.Model

	// waiting disables the input while one think request is in
	// flight. It is the only concurrency guard the dialog needs: no
	// cancellation, at most one outstanding request per dialog.
	waiting bool

	renderer      *glamour.TermRenderer
	rendererWidth int
}

func newChatSession(agent api.Agent, width, height int) *chatSession {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Ask " + agent.Name + "..."
	input.CharLimit = 4096
	input.Focus()

	vp := viewport.New(width, height)

	return &chatSession{
		agent:      agent,
		dialogID:   uuid.NewString(),
		transcript: model.NewTranscript(agent.AgentID),
		input:      input,
		viewport:   vp,
	}
}

// setSize resizes the dialog viewport.
func (c *chatSession) setSize(width, height int) {
	c.viewport.Width = width
	c.viewport.Height = height
}

// renderMarkdown renders agent replies through glamour, falling back
// to the plain text when rendering fails.
func (c *chatSession) renderMarkdown(text string, width int) string {
	if c.renderer == nil || c.rendererWidth != width {
		wrap := width
		if wrap < 20 {
			wrap = 20
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return text
		}
		c.renderer = renderer
		c.rendererWidth = width
	}

	out, err := c.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// refreshViewport re-renders the transcript into the viewport and
// scrolls to the bottom.
func (c *chatSession) refreshViewport(theme *styles.Theme) {
	width := c.viewport.Width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, entry := range c.transcript.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		label := entry.Speaker.DisplayName()
		switch entry.Speaker {
		case model.SpeakerUser:
			b.WriteString(theme.UserBubble.MaxWidth(width).Render(label + ": " + entry.Text))
		case model.SpeakerAgent:
			b.WriteString(theme.AgentBubble.MaxWidth(width).Render(c.renderMarkdown(entry.Text, width-8)))
		case model.SpeakerSystem:
			b.WriteString(theme.SystemBubble.MaxWidth(width).Render(entry.Text))
		}
		b.WriteString("\n")
	}

	c.viewport.SetContent(b.String())
	c.viewport.GotoBottom()
}
