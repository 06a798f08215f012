// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for the MINI S console.
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdGenerate
	CmdChat
	CmdAgents
	CmdStatus
	CmdLogs
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Server  string // Backend base URL override
	Model   string // Default model override for new agents
	JSON    bool   // Machine-readable output
	Quiet   bool   // Minimal output
	Verbose bool   // Debug output

	// Command-specific
	Agent      string // Agent name or ID for ask/chat
	Query      string
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `minis - admin console for the MINI S multi-agent platform

Minis is a terminal front end for a MINI S backend. It manages the
agent roster, talks to individual agents, and shows backend health.

Usage:
  minis                      Start TUI (default)
  minis ask <agent> "q"      Ask one agent a single question
  minis generate "prompt"    Run a prompt through a model directly
  minis chat [agent]         Interactive chat REPL
  minis agents [subcommand]  Agent roster management
  minis status, s            Backend health and system counters
  minis logs                 Print the backend log tail
  minis config [show|set]    Configuration
  minis version              Version information
  minis help                 This text

Agent Commands:
  minis agents list          List registered agents (alias: ls)
  minis agents create        Create an agent
    --name NAME              Agent name (required)
    --role TEXT              Agent role description (required)
    --model ID               Model ID (default from config)
  minis agents delete <id>   Delete an agent by ID
  minis agents show <id>     Show one agent

Chat Commands (inside the REPL):
  /agents                    List agents
  /use <name|id>             Switch the active agent
  /clear                     Clear the local transcript
  /help, /h                  Show REPL commands
  /quit, /q                  Exit chat
  Ctrl+D                     Exit chat

Config Commands:
  minis config show          Show current configuration
  minis config set KEY VAL   Set a value (server_url, default_model, theme)
  minis config path          Print the config file path

Global Flags:
  --server URL    Backend base URL (default http://127.0.0.1:8000)
  --model ID      Default model for new agents
  --json          Output in JSON format
  -q, --quiet     Minimal output
  -v, --verbose   Debug output

Examples:
  minis                               Start the TUI
  minis agents list --json            Roster as JSON for scripting
  minis ask PythonExpert "What is a goroutine?"
  minis chat Researcher               Chat with one agent
  minis status --server http://10.0.0.5:8000
  minis logs | grep ERROR

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("minis version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments and returns the command and args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "ask":
		parseAskArgs(&parsedArgs, remaining)
		return CmdAsk, parsedArgs

	case "generate", "gen":
		parseGenerateArgs(&parsedArgs, remaining)
		return CmdGenerate, parsedArgs

	case "chat":
		if len(remaining) > 0 && !strings.HasPrefix(remaining[0], "-") {
			parsedArgs.Agent = remaining[0]
		}
		return CmdChat, parsedArgs

	case "agents", "agent":
		parseAgentsArgs(&parsedArgs, remaining)
		return CmdAgents, parsedArgs

	case "status", "s":
		return CmdStatus, parsedArgs

	case "logs", "log":
		return CmdLogs, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: restore it and fall back to the TUI.
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdTUI, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--json":
			parsedArgs.JSON = true
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "--verbose":
			parsedArgs.Verbose = true
		case "--server":
			if i+1 < len(args) {
				i++
				parsedArgs.Server = args[i]
			}
		case "--model":
			if i+1 < len(args) {
				i++
				parsedArgs.Model = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--server="):
				parsedArgs.Server = strings.TrimPrefix(arg, "--server=")
			case strings.HasPrefix(arg, "--model="):
				parsedArgs.Model = strings.TrimPrefix(arg, "--model=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseAskArgs parses ask command specific arguments. The first
// positional argument is the agent, the rest is the question.
func parseAskArgs(args *Args, remaining []string) {
	var query []string

	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if args.Agent == "" {
			args.Agent = arg
			continue
		}
		query = append(query, arg)
	}

	args.Query = strings.Join(query, " ")
}

// parseGenerateArgs parses generate command specific arguments. All
// positional arguments form the prompt.
func parseGenerateArgs(args *Args, remaining []string) {
	var prompt []string
	for _, arg := range remaining {
		if !strings.HasPrefix(arg, "-") {
			prompt = append(prompt, arg)
		}
	}
	args.Query = strings.Join(prompt, " ")
}

// parseAgentsArgs parses agents command specific arguments.
func parseAgentsArgs(args *Args, remaining []string) {
	for i := 0; i < len(remaining); i++ {
		arg := remaining[i]

		switch arg {
		case "--name":
			if i+1 < len(remaining) {
				i++
				args.ConfigKey = remaining[i]
			}
		case "--role":
			if i+1 < len(remaining) {
				i++
				args.ConfigVal = remaining[i]
			}
		case "--model":
			if i+1 < len(remaining) {
				i++
				args.Model = remaining[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--name="):
				args.ConfigKey = strings.TrimPrefix(arg, "--name=")
			case strings.HasPrefix(arg, "--role="):
				args.ConfigVal = strings.TrimPrefix(arg, "--role=")
			case strings.HasPrefix(arg, "--model="):
				args.Model = strings.TrimPrefix(arg, "--model=")
			case strings.HasPrefix(arg, "-"):
				// Global flags already consumed; ignore strays.
			case args.Subcommand == "":
				args.Subcommand = arg
			case args.Agent == "":
				args.Agent = arg
			}
		}
	}

	if args.Subcommand == "" {
		args.Subcommand = "list"
	}
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) > 0 {
		args.Subcommand = remaining[0]
		if len(remaining) > 1 {
			args.ConfigKey = remaining[1]
		}
		if len(remaining) > 2 {
			args.ConfigVal = remaining[2]
		}
	}
	if args.Subcommand == "" {
		args.Subcommand = "show"
	}
}

// HandleVersion handles the "version" command.
func HandleVersion(args Args) {
	if args.JSON {
		resp := NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		})
		resp.Print()
		return
	}
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
