// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import "github.com/jeranaias/minis-tui/internal/api"

// =============================================================================
// COMPLETION MESSAGES
// =============================================================================

// agentsLoadedMsg carries a fresh roster from the backend. The cache
// is replaced wholesale; when fetches overlap, the last arrival wins.
type agentsLoadedMsg struct {
	agents []api.Agent
}

// agentsLoadErrMsg reports a failed roster fetch.
type agentsLoadErrMsg struct {
	err error
}

// modelsLoadedMsg carries the model catalog for the create form.
// The catalog never fails to load; the fallback list stands in when
// the backend has no catalog endpoint.
type modelsLoadedMsg struct {
	models   []api.ModelInfo
	fallback bool
}

// agentCreatedMsg reports a successful create. The handler re-fetches
// the roster rather than splicing the new agent in locally, so the
// list reflects whatever else changed on the backend since the last
// load.
type agentCreatedMsg struct {
	agent api.Agent
}

// agentCreateErrMsg reports a failed create; the form stays open.
type agentCreateErrMsg struct {
	err error
}

// agentDeletedMsg reports a successful delete. The handler splices
// the agent out of the local cache directly; no re-fetch.
type agentDeletedMsg struct {
	agentID string
}

// agentDeleteErrMsg reports a failed delete; the card stays.
type agentDeleteErrMsg struct {
	agentID string
	err     error
}

// thinkResultMsg carries an agent reply or failure for one dialog.
// dialogID identifies the chat session that issued the request;
// results for a closed or superseded dialog are dropped.
type thinkResultMsg struct {
	dialogID string
	reply    string
	err      error
}
