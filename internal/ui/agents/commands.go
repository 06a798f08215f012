// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agents

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/minis-tui/internal/api"
)

// =============================================================================
// BACKEND COMMANDS
// =============================================================================

// Commands capture the client and their arguments BEFORE returning
// the closure, so later model mutations cannot race with the command
// goroutine.

func fetchAgentsCmd(client *api.Client) tea.Cmd {
	timeout := client.GetConfig().Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		agents, err := client.ListAgents(ctx)
		if err != nil {
			return agentsLoadErrMsg{err: err}
		}
		return agentsLoadedMsg{agents: agents}
	}
}

func fetchModelsCmd(client *api.Client) tea.Cmd {
	timeout := client.GetConfig().Timeout
	fallback := client.CatalogIsFallback()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		models, err := client.ListModels(ctx)
		if err != nil {
			// The fallback catalog cannot fail; treat an error from a
			// future live endpoint as an empty catalog and let the
			// form surface it.
			return modelsLoadedMsg{models: nil, fallback: fallback}
		}
		return modelsLoadedMsg{models: models, fallback: fallback}
	}
}

func createAgentCmd(client *api.Client, req api.CreateAgentRequest) tea.Cmd {
	timeout := client.GetConfig().Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		agent, err := client.CreateAgent(ctx, req)
		if err != nil {
			return agentCreateErrMsg{err: err}
		}
		return agentCreatedMsg{agent: *agent}
	}
}

func deleteAgentCmd(client *api.Client, agentID string) tea.Cmd {
	timeout := client.GetConfig().Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := client.DeleteAgent(ctx, agentID); err != nil {
			return agentDeleteErrMsg{agentID: agentID, err: err}
		}
		return agentDeletedMsg{agentID: agentID}
	}
}

func thinkCmd(client *api.Client, dialogID, agentID, prompt string, cfg *api.GenerationConfig) tea.Cmd {
	timeout := client.GetConfig().Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Think(ctx, agentID, prompt, cfg)
		if err != nil {
			return thinkResultMsg{dialogID: dialogID, err: err}
		}
		return thinkResultMsg{dialogID: dialogID, reply: resp.Response}
	}
}
