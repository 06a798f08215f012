// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// json_output.go - JSON output support for scripting.
//
// Every command that accepts --json emits this envelope so callers can
// parse success and failure uniformly.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print outputs the JSON response to stdout. Human-readable messages
// go to stderr when JSON mode is enabled.
func (r *JSONResponse) Print() error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES
// =============================================================================

// AgentData is one agent in JSON output.
type AgentData struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	ModelID string `json:"model_id"`
}

// AgentListData is the data returned by "agents list".
type AgentListData struct {
	Agents []AgentData `json:"agents"`
	Count  int         `json:"count"`
}

// StatusData is the data returned by the status command.
type StatusData struct {
	Server string           `json:"server"`
	Status string           `json:"status"`
	Stats  *StatusStatsInfo `json:"stats,omitempty"`
}

// StatusStatsInfo contains backend counters for the status command.
type StatusStatsInfo struct {
	TotalAgents         int `json:"total_agents"`
	ActiveAgents        int `json:"active_agents"`
	AvailableModels     int `json:"available_models"`
	AvailableTools      int `json:"available_tools"`
	TotalQueuedMessages int `json:"total_queued_messages"`
	ActiveConversations int `json:"active_conversations"`
}

// AskData is the data returned by the ask command.
type AskData struct {
	AgentID    string `json:"agent_id"`
	Agent      string `json:"agent"`
	Response   string `json:"response"`
	DurationMs int64  `json:"duration_ms"`
}

// VersionData is the data returned by the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version,omitempty"`
}

// ConfigShowData is the data returned by "config show".
type ConfigShowData struct {
	ServerURL    string `json:"server_url"`
	TimeoutSecs  int    `json:"timeout_secs"`
	DefaultModel string `json:"default_model"`
	Theme        string `json:"theme"`
	Path         string `json:"config_path"`
}
