// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// agents_cmd.go - Plain-mode agent roster management.
//
// Command: agents
// Short:   Manage the backend's agent roster
//
// Examples:
//   minis agents list
//   minis agents create --name PythonExpert --role "Expert Python advice."
//   minis agents delete 3f2a...
//   minis agents show 3f2a... --json
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/util"
)

// HandleAgents handles the "agents" command.
func HandleAgents(args Args) error {
	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	switch args.Subcommand {
	case "list", "ls", "l":
		return handleAgentsList(ctx, client, args)
	case "create", "new":
		return handleAgentsCreate(ctx, client, args, cfg.Defaults.Model)
	case "delete", "rm":
		return handleAgentsDelete(ctx, client, args)
	case "show", "get":
		return handleAgentsShow(ctx, client, args)
	default:
		return fmt.Errorf("unknown agents subcommand: %s (try list, create, delete, show)", args.Subcommand)
	}
}

func handleAgentsList(ctx context.Context, client *api.Client, args Args) error {
	agents, err := client.ListAgents(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		data := AgentListData{Count: len(agents)}
		for _, a := range agents {
			data.Agents = append(data.Agents, AgentData(a))
		}
		return NewJSONResponse("agents.list", data).Print()
	}

	if len(agents) == 0 {
		fmt.Println(infoStyle.Render("No agents registered."))
		return nil
	}

	width := GetTerminalWidth()
	fmt.Printf("%-36s  %-20s  %-24s  %s\n", "ID", "NAME", "MODEL", "ROLE")
	for _, a := range agents {
		role := util.TruncateWidth(strings.ReplaceAll(a.Role, "\n", " "), width-86)
		fmt.Printf("%-36s  %-20s  %-24s  %s\n",
			a.AgentID,
			util.TruncateWidth(a.Name, 20),
			util.TruncateWidth(a.ModelID, 24),
			role)
	}
	if !args.Quiet {
		fmt.Println()
		fmt.Println(infoStyle.Render(fmt.Sprintf("%d agent(s)", len(agents))))
	}
	return nil
}

func handleAgentsCreate(ctx context.Context, client *api.Client, args Args, defaultModel string) error {
	name := strings.TrimSpace(args.ConfigKey)
	role := strings.TrimSpace(args.ConfigVal)
	modelID := args.Model
	if modelID == "" {
		modelID = defaultModel
	}

	if name == "" {
		return fmt.Errorf("agents create: --name is required")
	}
	if role == "" {
		return fmt.Errorf("agents create: --role is required")
	}

	agent, err := client.CreateAgent(ctx, api.CreateAgentRequest{
		Name:    name,
		Role:    role,
		ModelID: modelID,
	})
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("agents.create", AgentData(*agent)).Print()
	}

	fmt.Printf("%s Created agent %s (%s)\n",
		commandStyle.Render("[OK]"),
		agent.Name,
		agent.AgentID)
	return nil
}

func handleAgentsDelete(ctx context.Context, client *api.Client, args Args) error {
	if args.Agent == "" {
		return fmt.Errorf("agents delete: agent ID or name required")
	}

	agent, err := resolveAgent(ctx, client, args.Agent)
	if err != nil {
		return err
	}

	if err := client.DeleteAgent(ctx, agent.AgentID); err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("agents.delete", AgentData(*agent)).Print()
	}

	fmt.Printf("%s Deleted agent %s (%s)\n",
		commandStyle.Render("[OK]"),
		agent.Name,
		agent.AgentID)
	return nil
}

func handleAgentsShow(ctx context.Context, client *api.Client, args Args) error {
	if args.Agent == "" {
		return fmt.Errorf("agents show: agent ID or name required")
	}

	agent, err := resolveAgent(ctx, client, args.Agent)
	if err != nil {
		return err
	}

	// resolveAgent matched from the roster; re-fetch for the canonical
	// record so a stale list entry is not echoed back.
	fresh, err := client.GetAgent(ctx, agent.AgentID)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("agents.show", AgentData(*fresh)).Print()
	}

	fmt.Printf("%s %s\n", infoStyle.Render("ID:"), fresh.AgentID)
	fmt.Printf("%s %s\n", infoStyle.Render("Name:"), fresh.Name)
	fmt.Printf("%s %s\n", infoStyle.Render("Model:"), fresh.ModelID)
	fmt.Printf("%s %s\n", infoStyle.Render("Role:"), fresh.Role)
	return nil
}
