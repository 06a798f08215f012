// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration inspection and editing.
//
// Command: config
// Short:   Show or change the console configuration
//
// Examples:
//   minis config show
//   minis config set server_url http://10.0.0.5:8000
//   minis config set default_model mistral-7b-instruct-gguf
//   minis config path
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/minis-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "show", "":
		return handleConfigShow(args)
	case "set":
		return handleConfigSet(args)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s (try show, set, path)", args.Subcommand)
	}
}

func handleConfigShow(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config.show", ConfigShowData{
			ServerURL:    cfg.Server.URL,
			TimeoutSecs:  cfg.Server.TimeoutSecs,
			DefaultModel: cfg.Defaults.Model,
			Theme:        cfg.UI.Theme,
			Path:         path,
		}).Print()
	}

	fmt.Println(summaryHeaderStyle.Render("Configuration"))
	fmt.Println()
	fmt.Printf("  %s %s\n", infoStyle.Render("server_url:"), cfg.Server.URL)
	fmt.Printf("  %s %d\n", infoStyle.Render("timeout_secs:"), cfg.Server.TimeoutSecs)
	fmt.Printf("  %s %s\n", infoStyle.Render("default_model:"), cfg.Defaults.Model)
	fmt.Printf("  %s %s\n", infoStyle.Render("theme:"), cfg.UI.Theme)
	fmt.Println()
	fmt.Printf("  %s %s\n", infoStyle.Render("file:"), path)
	return nil
}

func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return fmt.Errorf("config set: usage: minis config set KEY VALUE")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch args.ConfigKey {
	case "server_url":
		cfg.Server.URL = args.ConfigVal
	case "timeout_secs":
		secs, err := strconv.Atoi(args.ConfigVal)
		if err != nil || secs <= 0 {
			return fmt.Errorf("config set: timeout_secs must be a positive integer")
		}
		cfg.Server.TimeoutSecs = secs
	case "default_model":
		cfg.Defaults.Model = args.ConfigVal
	case "theme":
		cfg.UI.Theme = args.ConfigVal
	default:
		return fmt.Errorf("config set: unknown key %q (server_url, timeout_secs, default_model, theme)", args.ConfigKey)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	if args.JSON {
		return NewJSONResponse("config.set", map[string]string{
			"key":   args.ConfigKey,
			"value": args.ConfigVal,
		}).Print()
	}

	fmt.Printf("%s %s = %s\n", commandStyle.Render("[OK]"), args.ConfigKey, args.ConfigVal)
	return nil
}
