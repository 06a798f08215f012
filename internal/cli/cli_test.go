// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/minis-tui/internal/api"
)

func TestParse_Defaults(t *testing.T) {
	cmd, args := Parse(nil)
	assert.Equal(t, CmdTUI, cmd)
	assert.False(t, args.JSON)
}

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"agents", []string{"agents", "list"}, CmdAgents},
		{"agents alias", []string{"agent"}, CmdAgents},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"logs", []string{"logs"}, CmdLogs},
		{"logs alias", []string{"log"}, CmdLogs},
		{"config", []string{"config", "show"}, CmdConfig},
		{"ask", []string{"ask", "PythonExpert", "hello"}, CmdAsk},
		{"generate", []string{"generate", "a", "haiku"}, CmdGenerate},
		{"generate alias", []string{"gen", "x"}, CmdGenerate},
		{"chat", []string{"chat"}, CmdChat},
		{"version", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"unknown falls back to TUI", []string{"bogus"}, CmdTUI},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := Parse(tc.argv)
			assert.Equal(t, tc.want, cmd)
		})
	}
}

func TestParse_GlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"--server", "http://10.0.0.5:8000", "--json", "-q", "agents", "list"})
	assert.Equal(t, CmdAgents, cmd)
	assert.Equal(t, "http://10.0.0.5:8000", args.Server)
	assert.True(t, args.JSON)
	assert.True(t, args.Quiet)
	assert.Equal(t, "list", args.Subcommand)
}

func TestParse_FlagEqualsForm(t *testing.T) {
	_, args := Parse([]string{"--server=http://host:9000", "--model=llama2-7b-chat-hf", "status"})
	assert.Equal(t, "http://host:9000", args.Server)
	assert.Equal(t, "llama2-7b-chat-hf", args.Model)
}

func TestParse_AskArgs(t *testing.T) {
	cmd, args := Parse([]string{"ask", "PythonExpert", "What", "is", "a", "goroutine?"})
	require.Equal(t, CmdAsk, cmd)
	assert.Equal(t, "PythonExpert", args.Agent)
	assert.Equal(t, "What is a goroutine?", args.Query)
}

func TestParse_GenerateArgs(t *testing.T) {
	cmd, args := Parse([]string{"generate", "--model=qwen-7b-chat-gguf", "a", "haiku"})
	require.Equal(t, CmdGenerate, cmd)
	assert.Equal(t, "a haiku", args.Query)
	assert.Equal(t, "qwen-7b-chat-gguf", args.Model)
}

func TestParse_AgentsCreateFlags(t *testing.T) {
	cmd, args := Parse([]string{"agents", "create", "--name", "Writer", "--role", "Writes prose.", "--model", "qwen-7b-chat-gguf"})
	require.Equal(t, CmdAgents, cmd)
	assert.Equal(t, "create", args.Subcommand)
	assert.Equal(t, "Writer", args.ConfigKey)
	assert.Equal(t, "Writes prose.", args.ConfigVal)
	assert.Equal(t, "qwen-7b-chat-gguf", args.Model)
}

func TestParse_AgentsDefaultsToList(t *testing.T) {
	_, args := Parse([]string{"agents"})
	assert.Equal(t, "list", args.Subcommand)
}

func TestParse_AgentsDeleteTarget(t *testing.T) {
	_, args := Parse([]string{"agents", "delete", "3f2a"})
	assert.Equal(t, "delete", args.Subcommand)
	assert.Equal(t, "3f2a", args.Agent)
}

func TestParse_ChatAgent(t *testing.T) {
	_, args := Parse([]string{"chat", "Researcher"})
	assert.Equal(t, "Researcher", args.Agent)
}

func TestParse_ConfigSet(t *testing.T) {
	_, args := Parse([]string{"config", "set", "server_url", "http://host:9000"})
	assert.Equal(t, "set", args.Subcommand)
	assert.Equal(t, "server_url", args.ConfigKey)
	assert.Equal(t, "http://host:9000", args.ConfigVal)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"plain error", errors.New("boom"), ExitError},
		{"not found", api.ErrAgentNotFound, ExitNotFound},
		{"connection", api.ErrBackendDown, ExitConnection},
		{"timeout", api.ErrTimeout, ExitConnection},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetExitCode(tc.err))
		})
	}
}

func TestJSONResponse_Shape(t *testing.T) {
	resp := NewJSONResponse("agents.list", AgentListData{Count: 0})
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.String()), &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "agents.list", decoded["command"])
	assert.Nil(t, decoded["error"])
}

func TestJSONErrorResponse_Shape(t *testing.T) {
	resp := NewJSONErrorResponse("status", errors.New("db down"))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.String()), &decoded))

	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "db down", decoded["error"])
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, formatNumber(tc.in))
	}
}
