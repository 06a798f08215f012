// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jeranaias/minis-tui/internal/api"
)

// =============================================================================
// CREATE FORM
// =============================================================================

// Form focus targets, cycled with tab.
const (
	focusName = iota
	focusRole
	focusModel
	focusSubmit
	focusCount
)

// createForm holds the state of the "new agent" modal. The form owns
// its own validation; nothing leaves the client until every field is
// filled.
type createForm struct {
	name textinput.Model
	role textinput.Model

	// Model selector, cycled with left/right once the catalog is in.
	models          []api.ModelInfo
	modelIdx        int
	modelsLoaded    bool
	fallbackCatalog bool

	focus      int
	submitting bool
	errMsg     string

	// pendingDefault is the configured default model, applied once
	// the catalog arrives.
	pendingDefault string
}

func newCreateForm(defaultModel string) *createForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "PythonExpert"
	name.CharLimit = 64
	name.Focus()

	role := textinput.New()
	role.Prompt = ""
	role.Placeholder = "A world-class Python programmer who provides expert advice."
	role.CharLimit = 512

	return &createForm{
		name:           name,
		role:           role,
		modelIdx:       -1,
		focus:          focusName,
		pendingDefault: defaultModel,
	}
}

// setModels installs the catalog and preselects the configured
// default model when it is present.
func (f *createForm) setModels(models []api.ModelInfo, fallback bool) {
	f.models = models
	f.modelsLoaded = true
	f.fallbackCatalog = fallback
	f.modelIdx = 0
	for i, m := range models {
		if m.ID == f.pendingDefault {
			f.modelIdx = i
			break
		}
	}
	if len(models) == 0 {
		f.modelIdx = -1
	}
}

// selectedModel returns the currently selected model ID, or "".
func (f *createForm) selectedModel() string {
	if f.modelIdx < 0 || f.modelIdx >= len(f.models) {
		return ""
	}
	return f.models[f.modelIdx].ID
}

// cycleModel moves the model selector by delta, wrapping around.
func (f *createForm) cycleModel(delta int) {
	if len(f.models) == 0 {
		return
	}
	f.modelIdx = (f.modelIdx + delta + len(f.models)) % len(f.models)
}

// cycleFocus moves the focus ring by delta, wrapping around, and
// updates which text input is focused.
func (f *createForm) cycleFocus(delta int) {
	f.focus = (f.focus + delta + focusCount) % focusCount

	f.name.Blur()
	f.role.Blur()
	switch f.focus {
	case focusName:
		f.name.Focus()
	case focusRole:
		f.role.Focus()
	}
}

// validate checks the form client-side. It returns the request and
// "" when every field is filled, otherwise a message naming the first
// missing field. Validation failures never reach the network.
func (f *createForm) validate() (api.CreateAgentRequest, string) {
	name := strings.TrimSpace(f.name.Value())
	role := strings.TrimSpace(f.role.Value())
	modelID := f.selectedModel()

	switch {
	case name == "":
		return api.CreateAgentRequest{}, "Name is required."
	case role == "":
		return api.CreateAgentRequest{}, "Role is required."
	case modelID == "":
		return api.CreateAgentRequest{}, "Pick a model."
	}

	return api.CreateAgentRequest{Name: name, Role: role, ModelID: modelID}, ""
}
