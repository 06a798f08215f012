// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - Shared backend client construction for plain-mode handlers.
package cli

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/config"
)

// LoadConfigAndClient loads the configuration, applies CLI overrides,
// and builds the backend client every handler uses.
func LoadConfigAndClient(args Args) (*config.Config, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if args.Server != "" {
		cfg.Server.URL = args.Server
	}
	if args.Model != "" {
		cfg.Defaults.Model = args.Model
	}

	logger := log.New(io.Discard, "", 0)
	if args.Verbose {
		logger = log.New(os.Stderr, "minis: ", log.LstdFlags)
	}

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.URL,
		Timeout: cfg.Server.Timeout(),
		Logger:  logger,
	})
	return cfg, client, nil
}

// resolveAgent finds an agent by ID or by case-insensitive name.
func resolveAgent(ctx context.Context, client *api.Client, ref string) (*api.Agent, error) {
	agents, err := client.ListAgents(ctx)
	if err != nil {
		return nil, err
	}

	for i := range agents {
		if agents[i].AgentID == ref {
			return &agents[i], nil
		}
	}
	for i := range agents {
		if strings.EqualFold(agents[i].Name, ref) {
			return &agents[i], nil
		}
	}

	return nil, &api.ClientError{
		Type:    api.ErrTypeNotFound,
		Message: "no agent named " + ref,
	}
}
