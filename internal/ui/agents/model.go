// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/ui/components"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// =============================================================================
// LIST STATE
// =============================================================================

// ListState represents the state of the agent roster.
type ListState int

const (
	StateIdle    ListState = iota // Nothing fetched yet
	StateLoading                  // Fetch in flight
	StateLoaded                   // Roster on screen
	StateError                    // Last fetch failed
)

// modalState identifies which modal, if any, sits on top of the list.
// At most one is ever active.
type modalState int

const (
	modalNone modalState = iota
	modalCreate
	modalConfirmDelete
	modalChat
)

// =============================================================================
// AGENTS MODEL
// =============================================================================

// Model is the Bubble Tea model for the agent roster view.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	// defaultModel preselects the model in the create form.
	defaultModel string

	state ListState
	modal modalState

	// agents is the roster cache. Loads replace it wholesale; a
	// successful delete splices the one agent out in place.
	agents   []api.Agent
	selected int

	// lastErr is shown as a banner in StateError. The stale roster
	// stays on screen underneath it.
	lastErr *components.ErrorBox

	spinner components.Spinner

	// Modal sub-state. Exactly one is non-nil while its modal is
	// active; closing a modal discards it.
	form          *createForm
	confirmTarget *api.Agent
	deleting      bool
	chat          *chatSession

	// Model catalog, fetched lazily the first time the create form
	// opens and cached for the rest of the session.
	models          []api.ModelInfo
	modelsFetched   bool
	fallbackCatalog bool

	width  int
	height int
}

// New creates the agent roster model.
func New(client *api.Client, theme *styles.Theme, defaultModel string) Model {
	return Model{
		client:       client,
		theme:        theme,
		defaultModel: defaultModel,
		state:        StateIdle,
		modal:        modalNone,
		spinner:      components.NewSpinner(),
		width:        80,
		height:       24,
	}
}

// Init moves the list out of StateIdle and starts the first roster
// fetch. It takes a pointer so the state transition sticks.
func (m *Model) Init() tea.Cmd {
	return m.refresh()
}

// State returns the current list state.
func (m Model) State() ListState {
	return m.state
}

// Agents returns the cached roster.
func (m Model) Agents() []api.Agent {
	return m.agents
}

// ModalOpen reports whether a modal is capturing keyboard input.
func (m Model) ModalOpen() bool {
	return m.modal != modalNone
}

// SetSize updates the layout dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.chat != nil {
		m.chat.setSize(width-4, height-8)
	}
}

// refresh moves the list to StateLoading and issues a fetch. The
// previous roster stays cached until the fresh one lands.
func (m *Model) refresh() tea.Cmd {
	m.state = StateLoading
	m.spinner.SetMessage("Loading agents")
	return tea.Batch(m.spinner.Start(), fetchAgentsCmd(m.client))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the agent roster view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case agentsLoadedMsg:
		// Last arrival wins when fetches overlap.
		m.state = StateLoaded
		m.lastErr = nil
		m.spinner.Stop()
		m.agents = msg.agents
		m.clampSelection()
		return m, nil

	case agentsLoadErrMsg:
		m.state = StateError
		m.spinner.Stop()
		box := components.NewErrorBox(msg.err)
		m.lastErr = &box
		// The stale roster stays on screen under the banner.
		return m, nil

	case modelsLoadedMsg:
		m.models = msg.models
		m.modelsFetched = true
		m.fallbackCatalog = msg.fallback
		if m.modal == modalCreate && m.form != nil {
			m.form.setModels(msg.models, msg.fallback)
		}
		return m, nil

	case agentCreatedMsg:
		if m.modal == modalCreate {
			m.modal = modalNone
			m.form = nil
		}
		// Full re-fetch on create: the backend assigned the ID and
		// may have changed in other ways since the last load.
		cmd := m.refresh()
		return m, cmd

	case agentCreateErrMsg:
		if m.modal == modalCreate && m.form != nil {
			m.form.submitting = false
			m.form.errMsg = msg.err.Error()
		}
		return m, nil

	case agentDeletedMsg:
		// Optimistic local splice; no re-fetch.
		m.removeAgent(msg.agentID)
		if m.modal == modalConfirmDelete {
			m.modal = modalNone
			m.confirmTarget = nil
			m.deleting = false
		}
		return m, nil

	case agentDeleteErrMsg:
		if m.modal == modalConfirmDelete {
			m.modal = modalNone
			m.confirmTarget = nil
			m.deleting = false
		}
		box := components.NewErrorBox(msg.err)
		m.lastErr = &box
		return m, nil

	case thinkResultMsg:
		return m.handleThinkResult(msg)
	}

	// Spinner ticks and other component messages.
	if m.state == StateLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleThinkResult applies an agent reply to the dialog that asked
// for it, and drops replies whose dialog is gone.
func (m Model) handleThinkResult(msg thinkResultMsg) (Model, tea.Cmd) {
	if m.modal != modalChat || m.chat == nil || m.chat.dialogID != msg.dialogID {
		// The operator closed or replaced the dialog while the
		// request was in flight.
		return m, nil
	}

	m.chat.waiting = false
	if msg.err != nil {
		m.chat.transcript.AddSystemEntry(msg.err.Error())
	} else {
		m.chat.transcript.AddAgentEntry(strings.TrimSpace(msg.reply))
	}
	m.chat.refreshViewport(m.theme)
	m.chat.input.Focus()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.modal {
	case modalCreate:
		return m.handleCreateKey(msg)
	case modalConfirmDelete:
		return m.handleConfirmKey(msg)
	case modalChat:
		return m.handleChatKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.agents)-1 {
			m.selected++
		}
	case "r":
		cmd := m.refresh()
		return m, cmd
	case "n":
		m.modal = modalCreate
		m.form = newCreateForm(m.defaultModel)
		if m.modelsFetched {
			m.form.setModels(m.models, m.fallbackCatalog)
			return m, nil
		}
		// Catalog is fetched at most once per session.
		return m, fetchModelsCmd(m.client)
	case "d":
		if agent := m.selectedAgent(); agent != nil {
			target := *agent
			m.modal = modalConfirmDelete
			m.confirmTarget = &target
			m.deleting = false
		}
	case "enter":
		if agent := m.selectedAgent(); agent != nil {
			m.modal = modalChat
			m.chat = newChatSession(*agent, m.width-4, m.height-8)
		}
	}
	return m, nil
}

func (m Model) handleCreateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.form == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Closing discards the form, even mid-submit. A late
		// completion message finds the modal gone and only refreshes
		// the roster.
		m.modal = modalNone
		m.form = nil
		return m, nil
	}

	// The disabled submit control is the only guard against double
	// submission: while in flight, the form ignores everything but
	// esc.
	if m.form.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.form.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycleFocus(-1)
		return m, nil
	case "left":
		if m.form.focus == focusModel {
			m.form.cycleModel(-1)
			return m, nil
		}
	case "right":
		if m.form.focus == focusModel {
			m.form.cycleModel(1)
			return m, nil
		}
	case "enter":
		if m.form.focus == focusSubmit || m.form.focus == focusModel {
			return m.submitCreate()
		}
		m.form.cycleFocus(1)
		return m, nil
	}

	// Route typing to the focused input.
	var cmd tea.Cmd
	switch m.form.focus {
	case focusName:
		m.form.name, cmd = m.form.name.Update(msg)
	case focusRole:
		m.form.role, cmd = m.form.role.Update(msg)
	}
	return m, cmd
}

func (m Model) submitCreate() (Model, tea.Cmd) {
	req, errMsg := m.form.validate()
	if errMsg != "" {
		// Rejected client-side; nothing reaches the network.
		m.form.errMsg = errMsg
		return m, nil
	}

	m.form.errMsg = ""
	m.form.submitting = true
	return m, createAgentCmd(m.client, req)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.deleting {
		// One delete in flight; wait for its completion message.
		if msg.String() == "esc" {
			m.modal = modalNone
			m.confirmTarget = nil
			m.deleting = false
		}
		return m, nil
	}

	switch msg.String() {
	case "y", "enter":
		if m.confirmTarget != nil {
			m.deleting = true
			return m, deleteAgentCmd(m.client, m.confirmTarget.AgentID)
		}
	case "n", "esc":
		m.modal = modalNone
		m.confirmTarget = nil
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.chat == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Closing the dialog discards the transcript and the
		// dialogID; an in-flight reply will no longer match.
		m.modal = modalNone
		m.chat = nil
		return m, nil
	case "enter":
		return m.sendPrompt()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(msg)
		return m, cmd
	}

	if m.chat.waiting {
		// Input is disabled while the agent thinks.
		return m, nil
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m Model) sendPrompt() (Model, tea.Cmd) {
	if m.chat.waiting {
		return m, nil
	}

	prompt := strings.TrimSpace(m.chat.input.Value())
	if prompt == "" {
		return m, nil
	}

	m.chat.input.SetValue("")
	m.chat.waiting = true
	m.chat.transcript.AddUserEntry(prompt)
	m.chat.refreshViewport(m.theme)

	return m, thinkCmd(m.client, m.chat.dialogID, m.chat.agent.AgentID, prompt, nil)
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) selectedAgent() *api.Agent {
	if m.selected < 0 || m.selected >= len(m.agents) {
		return nil
	}
	return &m.agents[m.selected]
}

func (m *Model) removeAgent(agentID string) {
	for i, agent := range m.agents {
		if agent.AgentID == agentID {
			m.agents = append(m.agents[:i], m.agents[i+1:]...)
			break
		}
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.agents) {
		m.selected = len(m.agents) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
