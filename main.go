// minis - admin console for the MINI S multi-agent platform.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/cli"
	"github.com/jeranaias/minis-tui/internal/config"
	"github.com/jeranaias/minis-tui/internal/ui/agents"
	"github.com/jeranaias/minis-tui/internal/ui/components"
	"github.com/jeranaias/minis-tui/internal/ui/dashboard"
	"github.com/jeranaias/minis-tui/internal/ui/logs"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate

	cmd, args := cli.Parse(os.Args[1:])

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)

	case cli.CmdAsk:
		if err := cli.HandleAsk(args); err != nil {
			cli.ExitWithError("ask", err, args.JSON)
		}

	case cli.CmdGenerate:
		if err := cli.HandleGenerate(args); err != nil {
			cli.ExitWithError("generate", err, args.JSON)
		}

	case cli.CmdChat:
		if err := cli.HandleChat(args); err != nil {
			cli.ExitWithError("chat", err, args.JSON)
		}

	case cli.CmdAgents:
		if err := cli.HandleAgents(args); err != nil {
			cli.ExitWithError("agents", err, args.JSON)
		}

	case cli.CmdStatus:
		if err := cli.HandleStatus(args); err != nil {
			cli.ExitWithError("status", err, args.JSON)
		}

	case cli.CmdLogs:
		if err := cli.HandleLogs(args); err != nil {
			cli.ExitWithError("logs", err, args.JSON)
		}

	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			cli.ExitWithError("config", err, args.JSON)
		}

	case cli.CmdVersion:
		cli.HandleVersion(args)

	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// runTUI starts the full-screen console.
func runTUI(args cli.Args) {
	cfg, client, err := cli.LoadConfigAndClient(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := newApp(cfg, client)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APP SHELL
// =============================================================================

// viewState identifies the active top-level view.
type viewState int

const (
	viewDashboard viewState = iota
	viewAgents
	viewLogs
)

func (v viewState) name() string {
	switch v {
	case viewDashboard:
		return "Dashboard"
	case viewAgents:
		return "Agents"
	case viewLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// appModel composes the three views under one status bar and routes
// messages to whichever view is active. Non-key messages fan out to
// every view so an in-flight fetch settles even after the operator
// switches away.
type appModel struct {
	cfg    *config.Config
	client *api.Client
	theme  *styles.Theme

	view      viewState
	dashboard dashboard.Model
	agents    agents.Model
	logs      logs.Model

	statusBar *components.StatusBar

	// Views are initialized lazily so the first paint only costs one
	// backend round trip.
	started [3]bool

	width  int
	height int
}

func newApp(cfg *config.Config, client *api.Client) *appModel {
	theme := styles.NewTheme()

	statusBar := components.NewStatusBar(theme)
	statusBar.ServerURL = cfg.Server.URL
	statusBar.SetView(viewDashboard.name())

	return &appModel{
		cfg:       cfg,
		client:    client,
		theme:     theme,
		view:      viewDashboard,
		dashboard: dashboard.New(client, theme),
		agents:    agents.New(client, theme, cfg.Defaults.Model),
		logs:      logs.New(client, theme),
		statusBar: statusBar,
	}
}

func (a *appModel) Init() tea.Cmd {
	a.started[viewDashboard] = true
	return a.dashboard.Init()
}

func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.statusBar.SetWidth(msg.Width)
		a.dashboard.SetSize(msg.Width, msg.Height-2)
		a.agents.SetSize(msg.Width, msg.Height-2)
		a.logs.SetSize(msg.Width, msg.Height-2)
		return a, nil
	}

	var cmds []tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey {
		// Keys go only to the active view.
		switch a.view {
		case viewDashboard:
			var cmd tea.Cmd
			a.dashboard, cmd = a.dashboard.Update(msg)
			cmds = append(cmds, cmd)
		case viewAgents:
			var cmd tea.Cmd
			a.agents, cmd = a.agents.Update(msg)
			cmds = append(cmds, cmd)
		case viewLogs:
			var cmd tea.Cmd
			a.logs, cmd = a.logs.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else {
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		cmds = append(cmds, cmd)
		a.agents, cmd = a.agents.Update(msg)
		cmds = append(cmds, cmd)
		a.logs, cmd = a.logs.Update(msg)
		cmds = append(cmds, cmd)
	}

	a.syncStatusBar()
	return a, tea.Batch(cmds...)
}

// handleGlobalKey handles quit and view switching. Keys pass through
// while the agents view has a modal open so typing "1" into a form
// field does not switch views.
func (a *appModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}

	if a.view == viewAgents && a.agents.ModalOpen() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "1":
		return a.switchView(viewDashboard), true
	case "2":
		return a.switchView(viewAgents), true
	case "3":
		return a.switchView(viewLogs), true
	case "tab":
		return a.switchView((a.view + 1) % 3), true
	}
	return nil, false
}

func (a *appModel) switchView(v viewState) tea.Cmd {
	a.view = v
	a.statusBar.SetView(v.name())

	if a.started[v] {
		return nil
	}
	a.started[v] = true

	switch v {
	case viewDashboard:
		return a.dashboard.Init()
	case viewAgents:
		return a.agents.Init()
	case viewLogs:
		return a.logs.Init()
	}
	return nil
}

// syncStatusBar derives the status line from the active view.
func (a *appModel) syncStatusBar() {
	a.statusBar.SetConnected(a.dashboard.Connected())

	switch a.view {
	case viewAgents:
		switch a.agents.State() {
		case agents.StateLoading:
			a.statusBar.SetStatus(components.StatusLoading)
		case agents.StateError:
			a.statusBar.SetStatus(components.StatusError)
		case agents.StateLoaded:
			a.statusBar.SetStatus(components.StatusReady)
		default:
			a.statusBar.SetStatus(components.StatusIdle)
		}
	default:
		if a.dashboard.Connected() {
			a.statusBar.SetStatus(components.StatusReady)
		} else {
			a.statusBar.SetStatus(components.StatusError)
		}
	}
}

func (a *appModel) View() string {
	var body string
	switch a.view {
	case viewDashboard:
		body = a.dashboard.View()
	case viewAgents:
		body = a.agents.View()
	case viewLogs:
		body = a.logs.View()
	}

	return a.theme.App.Render(body) + "\n" + a.statusBar.View()
}
