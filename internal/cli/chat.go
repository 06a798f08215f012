// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat REPL for the MINI S console.
//
// Command: chat
// Short:   Start an interactive chat session with one agent
//
// Examples:
//   minis chat                   Pick the first registered agent
//   minis chat PythonExpert      Chat with a specific agent
//   minis chat --server URL      Chat against another backend
//
// Interactive Commands (during chat):
//   /agents            List registered agents
//   /use <name|id>     Switch the active agent
//   /clear             Clear the local transcript
//   /status, /s        Show session statistics
//   /help, /h          Show available commands
//   /quit, /q          Exit chat
//   Ctrl+D             Exit chat
//
// The transcript lives only in this process; the backend keeps each
// agent's durable memory on its side.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/config"
	"github.com/jeranaias/minis-tui/internal/model"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt. Supports
// history navigation with arrow keys.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history to file with secure permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for one interactive chat session.
type ChatSession struct {
	Client *api.Client
	Config *config.Config

	// Active agent and its local transcript. Switching agents starts a
	// fresh transcript.
	Agent      *api.Agent
	Transcript *model.Transcript

	Quiet bool

	StartTime time.Time
	Queries   int

	InputCLI *ChatCLI
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChat handles the "chat" command.
func HandleChat(args Args) error {
	cfg, client, err := LoadConfigAndClient(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout())
	agent, err := pickAgent(ctx, client, args.Agent)
	cancel()
	if err != nil {
		return err
	}

	session := &ChatSession{
		Client:     client,
		Config:     cfg,
		Agent:      agent,
		Transcript: model.NewTranscript(agent.AgentID),
		Quiet:      args.Quiet,
		StartTime:  time.Now(),
		InputCLI:   NewChatCLI(),
	}
	defer session.InputCLI.Close()

	if !session.Quiet {
		printWelcome(session)
	}

	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("minis> "))
		if err != nil {
			// Ctrl+C (ErrPromptAborted), Ctrl+D, or a read error all
			// end the session.
			fmt.Println()
			printExitSummary(session)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := handleSlashCommand(input, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				printExitSummary(session)
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(session)
			return nil
		}

		if err := processMessage(session, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// pickAgent resolves the requested agent, or defaults to the first
// registered agent when none was named.
func pickAgent(ctx context.Context, client *api.Client, ref string) (*api.Agent, error) {
	if ref != "" {
		return resolveAgent(ctx, client, ref)
	}

	agents, err := client.ListAgents(ctx)
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, fmt.Errorf("no agents registered; create one with: minis agents create")
	}
	return &agents[0], nil
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage sends one prompt to the active agent and prints the
// reply.
func processMessage(session *ChatSession, input string) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Server.Timeout())
	defer cancel()

	session.Transcript.AddUserEntry(input)

	start := time.Now()
	resp, err := session.Client.Think(ctx, session.Agent.AgentID, input, nil)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	reply := strings.TrimSpace(resp.Response)
	session.Transcript.AddAgentEntry(reply)
	session.Queries++

	fmt.Println()
	displayResponse(reply)
	fmt.Println()

	if !session.Quiet {
		fmt.Fprintf(os.Stderr, "%s %s | %s\n",
			infoStyle.Render("[Stats]"),
			session.Agent.Name,
			elapsed.Round(time.Millisecond))
	}
	return nil
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands. Returns (keepGoing,
// error) where keepGoing=false means exit.
func handleSlashCommand(cmd string, session *ChatSession) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	command := strings.ToLower(parts[0])
	rest := parts[1:]

	switch command {
	case "/help", "/h", "/?", "/":
		printHelp()
		return true, nil

	case "/agents", "/a":
		return true, printAgentList(session)

	case "/use", "/u":
		return handleUseCommand(session, rest)

	case "/clear", "/c":
		session.Transcript = model.NewTranscript(session.Agent.AgentID)
		fmt.Println(commandStyle.Render("[Transcript cleared]"))
		return true, nil

	case "/status", "/s":
		printStatus(session)
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", command)
	}
}

// printAgentList lists the roster inside the REPL.
func printAgentList(session *ChatSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Server.Timeout())
	defer cancel()

	agents, err := session.Client.ListAgents(ctx)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		fmt.Println(infoStyle.Render("[No agents registered]"))
		return nil
	}

	fmt.Println()
	for _, a := range agents {
		marker := "  "
		name := a.Name
		if a.AgentID == session.Agent.AgentID {
			marker = commandStyle.Render("* ")
			name = commandStyle.Render(name)
		}
		fmt.Printf("%s%s  %s\n", marker, name, infoStyle.Render(a.ModelID))
	}
	fmt.Println()
	return nil
}

// handleUseCommand switches the active agent.
func handleUseCommand(session *ChatSession, args []string) (bool, error) {
	if len(args) == 0 {
		fmt.Printf("%s Active agent: %s\n",
			infoStyle.Render("[Agent]"),
			commandStyle.Render(session.Agent.Name))
		return true, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), session.Config.Server.Timeout())
	defer cancel()

	agent, err := resolveAgent(ctx, session.Client, strings.Join(args, " "))
	if err != nil {
		return true, err
	}

	session.Agent = agent
	session.Transcript = model.NewTranscript(agent.AgentID)
	fmt.Printf("%s Switched to %s (%s)\n",
		commandStyle.Render("[OK]"),
		agent.Name,
		agent.ModelID)
	return true, nil
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("minis interactive chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Agent:"),
		commandStyle.Render(session.Agent.Name))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Model:"),
		commandStyle.Render(session.Agent.ModelID))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Server:"),
		session.Config.Server.URL)
	fmt.Println()
	fmt.Println(infoStyle.Render("Type your message and press Enter. Commands: /help, /quit"))
	fmt.Println()
}

// printHelp prints available commands.
func printHelp() {
	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/agents, /a", "List registered agents"},
		{"/use <name>", "Switch the active agent"},
		{"/clear, /c", "Clear the local transcript"},
		{"/status, /s", "Show session statistics"},
		{"/help, /h", "Show this help"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-15s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+D exits"))
	fmt.Println()
}

// printStatus prints session statistics.
func printStatus(session *ChatSession) {
	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Session Status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()
	fmt.Printf("  %s %s (%s)\n",
		infoStyle.Render("Agent:"),
		commandStyle.Render(session.Agent.Name),
		session.Agent.ModelID)
	fmt.Printf("  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Printf("  %s %d\n", infoStyle.Render("Queries:"), session.Queries)
	fmt.Printf("  %s %d entries\n", infoStyle.Render("Transcript:"), session.Transcript.Len())
	fmt.Println()
}

// printExitSummary prints the session summary on exit.
func printExitSummary(session *ChatSession) {
	if session.Queries == 0 {
		fmt.Println(infoStyle.Render("Goodbye!"))
		return
	}

	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render("Session Summary"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Printf("  %s %d\n", infoStyle.Render("Queries:"), session.Queries)
	fmt.Printf("  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Println()
	fmt.Println(infoStyle.Render("Goodbye!"))
}
