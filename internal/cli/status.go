// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - Backend health and system counters.
//
// Command: status (alias: s)
// Short:   Show backend health and system-wide counters
package cli

import (
	"context"
	"fmt"
)

// HandleStatus handles the "status" command.
func HandleStatus(args Args) error {
	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		return err
	}

	data := StatusData{
		Server: cfg.Server.URL,
		Status: health.Status,
	}

	// Stats are best-effort: a backend that answers health but not
	// stats still gets a useful status line.
	stats, statsErr := client.SystemStats(ctx)
	if statsErr == nil {
		data.Stats = &StatusStatsInfo{
			TotalAgents:         stats.TotalAgents,
			ActiveAgents:        stats.ActiveAgents,
			AvailableModels:     stats.AvailableModels,
			AvailableTools:      stats.AvailableTools,
			TotalQueuedMessages: stats.TotalQueuedMessages,
			ActiveConversations: stats.ActiveConversations,
		}
	}

	if args.JSON {
		return NewJSONResponse("status", data).Print()
	}

	fmt.Printf("%s %s\n", infoStyle.Render("Server:"), cfg.Server.URL)
	fmt.Printf("%s %s\n", infoStyle.Render("Status:"), commandStyle.Render(health.Status))
	if health.Message != "" {
		fmt.Printf("%s %s\n", infoStyle.Render("Message:"), health.Message)
	}

	if data.Stats != nil {
		fmt.Println()
		fmt.Printf("  %s %d (%d active)\n",
			infoStyle.Render("Agents:"), data.Stats.TotalAgents, data.Stats.ActiveAgents)
		fmt.Printf("  %s %d\n", infoStyle.Render("Models:"), data.Stats.AvailableModels)
		fmt.Printf("  %s %d\n", infoStyle.Render("Tools:"), data.Stats.AvailableTools)
		fmt.Printf("  %s %d\n", infoStyle.Render("Queued messages:"), data.Stats.TotalQueuedMessages)
		fmt.Printf("  %s %d\n", infoStyle.Render("Conversations:"), data.Stats.ActiveConversations)
	} else if !args.Quiet {
		fmt.Println()
		fmt.Printf("%s stats unavailable: %v\n", warningStyle.Render("[!]"), statsErr)
	}

	return nil
}
