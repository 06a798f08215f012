// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// generate_cmd.go - Direct model generation, bypassing the agent layer.
//
// Command: generate
// Short:   Run a prompt through a model with no agent persona
//
// Examples:
//   minis generate "Write a haiku about queues"
//   minis generate --model mistral-7b-instruct-gguf "..." --json
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeranaias/minis-tui/internal/api"
)

// GenerateData is the data returned by the generate command.
type GenerateData struct {
	ModelID  string `json:"model_id"`
	Response string `json:"response"`
}

// HandleGenerate handles the "generate" command.
func HandleGenerate(args Args) error {
	prompt := strings.TrimSpace(args.Query)
	if prompt == "" {
		return fmt.Errorf("generate: prompt required")
	}

	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	modelID := args.Model
	if modelID == "" {
		modelID = cfg.Defaults.Model
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	defer cancel()

	resp, err := client.Generate(ctx, api.GenerateRequest{
		ModelID: modelID,
		Prompt:  prompt,
	})
	if err != nil {
		return err
	}

	text := strings.TrimSpace(resp.GeneratedText)

	if args.JSON {
		return NewJSONResponse("generate", GenerateData{
			ModelID:  resp.ModelID,
			Response: text,
		}).Print()
	}

	displayResponse(text)
	return nil
}
