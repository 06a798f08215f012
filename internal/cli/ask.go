// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question to a single agent.
//
// Command: ask
// Short:   Ask one agent a single question and print the reply
//
// Examples:
//   minis ask PythonExpert "What is a goroutine?"
//   minis ask 3f2a... "Summarize the last deploy" --json
//   echo "question" | xargs -0 minis ask Researcher
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// HandleAsk handles the "ask" command.
func HandleAsk(args Args) error {
	if args.Agent == "" {
		return fmt.Errorf("ask: agent name or ID required")
	}
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return fmt.Errorf("ask: question required")
	}

	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	agent, err := resolveAgent(ctx, client, args.Agent)
	if err != nil {
		return err
	}

	if !args.Quiet && !args.JSON {
		fmt.Fprintf(os.Stderr, "%s %s (%s)\n",
			infoStyle.Render("[Asking]"),
			agent.Name,
			agent.ModelID)
	}

	start := time.Now()
	resp, err := client.Think(ctx, agent.AgentID, query, nil)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	reply := strings.TrimSpace(resp.Response)

	if args.JSON {
		return NewJSONResponse("ask", AskData{
			AgentID:    agent.AgentID,
			Agent:      agent.Name,
			Response:   reply,
			DurationMs: elapsed.Milliseconds(),
		}).Print()
	}

	displayResponse(reply)

	if !args.Quiet {
		fmt.Fprintf(os.Stderr, "\n%s %s\n",
			infoStyle.Render("[Done]"),
			elapsed.Round(time.Millisecond))
	}
	return nil
}
