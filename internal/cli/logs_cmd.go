// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// logs_cmd.go - Print the backend's log tail.
//
// Command: logs
// Short:   Print the backend log buffer to stdout
//
// The backend serves its log buffer as plain text, so this is a raw
// passthrough: no coloring, no wrapping, safe to pipe into grep.
package cli

import (
	"context"
	"fmt"
)

// HandleLogs handles the "logs" command.
func HandleLogs(args Args) error {
	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	text, err := client.SystemLogs(ctx)
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("logs", map[string]string{"logs": text}).Print()
	}

	fmt.Print(text)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		fmt.Println()
	}
	return nil
}
