// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/minis-tui/internal/ui/styles"
	"github.com/jeranaias/minis-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the agent roster, with any active modal on top.
func (m Model) View() string {
	switch m.modal {
	case modalCreate:
		return m.viewCreateForm()
	case modalConfirmDelete:
		return m.viewConfirmDelete()
	case modalChat:
		return m.viewChat()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("Agents"))
	b.WriteString("\n\n")

	if m.state == StateError && m.lastErr != nil {
		b.WriteString(m.lastErr.View(m.theme, m.width))
		b.WriteString("\n\n")
	}

	if m.state == StateLoading && len(m.agents) == 0 {
		b.WriteString(m.spinner.View(m.theme))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.agents) == 0 {
		b.WriteString(m.theme.EmptyList.Render("No agents yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		for i, agent := range m.agents {
			style := m.theme.Card
			if i == m.selected {
				style = m.theme.CardSelected
			}

			card := m.theme.CardName.Render(agent.Name) + "\n" +
				m.theme.CardRole.Render(util.TruncateWidth(agent.Role, m.width-12)) + "\n" +
				m.theme.CardModel.Render(agent.ModelID)

			b.WriteString(style.Width(m.width - 4).Render(card))
			b.WriteString("\n")
		}

		if m.state == StateLoading {
			b.WriteString("\n")
			b.WriteString(m.spinner.View(m.theme))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.shortcutLine([][2]string{
		{"n", "new"}, {"enter", "chat"}, {"d", "delete"}, {"r", "refresh"},
	}))
	return b.String()
}

func (m Model) viewCreateForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("New agent"))
	b.WriteString("\n\n")

	if !f.modelsLoaded {
		b.WriteString(m.theme.ThinkingText.Render("Loading model catalog..."))
		b.WriteString("\n")
		return m.theme.ModalBox.Width(min(m.width-4, 72)).Render(b.String())
	}

	b.WriteString(m.formRow("Name", f.name.View(), f.focus == focusName))
	b.WriteString("\n")
	b.WriteString(m.formRow("Role", f.role.View(), f.focus == focusRole))
	b.WriteString("\n")

	modelValue := "(none available)"
	if id := f.selectedModel(); id != "" {
		modelValue = "< " + id + " >"
	}
	b.WriteString(m.formRow("Model", modelValue, f.focus == focusModel))
	b.WriteString("\n")

	if f.fallbackCatalog {
		b.WriteString(m.theme.ShortcutDesc.Render("Built-in model list; the backend does not report its catalog."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	button := m.theme.ButtonActive
	label := "Create"
	if f.submitting {
		button = m.theme.ButtonDisabled
		label = "Creating..."
	} else if f.focus != focusSubmit {
		button = m.theme.ButtonDisabled.Foreground(styles.TextSecondary)
	}
	b.WriteString(button.Render(label))
	b.WriteString("\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.FormError.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.shortcutLine([][2]string{
		{"tab", "next field"}, {"enter", "submit"}, {"esc", "cancel"},
	}))

	return m.theme.ModalBox.Width(min(m.width-4, 72)).Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	if m.confirmTarget == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Delete agent"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.FormValue.Render("Delete " + m.confirmTarget.Name + "?"))
	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("This removes the agent from the backend."))
	b.WriteString("\n\n")

	if m.deleting {
		b.WriteString(m.theme.ThinkingText.Render("Deleting..."))
	} else {
		b.WriteString(m.shortcutLine([][2]string{
			{"y", "delete"}, {"n", "keep"},
		}))
	}

	return m.theme.ModalBox.Width(min(m.width-4, 60)).Render(b.String())
}

func (m Model) viewChat() string {
	c := m.chat
	if c == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.HeaderTitle.Render("Chat: " + c.agent.Name))
	b.WriteString(" ")
	b.WriteString(m.theme.HeaderSubtitle.Render(c.agent.ModelID))
	b.WriteString("\n\n")

	if c.transcript.IsEmpty() {
		b.WriteString(m.theme.EmptyList.Render("Say something to " + c.agent.Name + "."))
		b.WriteString("\n")
	} else {
		b.WriteString(c.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if c.waiting {
		b.WriteString(m.theme.ThinkingText.Render(c.agent.Name + " is thinking..."))
	} else {
		b.WriteString(c.input.View())
	}
	b.WriteString("\n\n")
	b.WriteString(m.shortcutLine([][2]string{
		{"enter", "send"}, {"pgup/pgdn", "scroll"}, {"esc", "close"},
	}))
	return b.String()
}

func (m Model) formRow(label, value string, focused bool) string {
	l := m.theme.FormLabel.Render(label)
	if focused {
		l = m.theme.FormLabel.Foreground(styles.Cyan).Bold(true).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, l, " ", value)
}

func (m Model) shortcutLine(pairs [][2]string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, m.theme.ShortcutKey.Render(p[0])+" "+m.theme.ShortcutDesc.Render(p[1]))
	}
	return strings.Join(parts, "  ")
}
