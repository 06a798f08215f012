// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

// =============================================================================
// AGENT TYPES
// =============================================================================

// Agent is the backend's wire representation of an agent.
type Agent struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	ModelID string `json:"model_id"`
}

// CreateAgentRequest is the payload for registering a new agent.
type CreateAgentRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	ModelID string `json:"model_id"`
}

// ThinkRequest triggers an agent's reasoning over a prompt.
// GenerationConfig is optional; the backend applies its own defaults
// when it is absent.
type ThinkRequest struct {
	Prompt           string            `json:"prompt"`
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
}

// GenerationConfig tunes a single generation. Zero-valued fields are
// omitted so the backend's defaults apply.
type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// ThinkResponse is the agent's reply to a ThinkRequest.
type ThinkResponse struct {
	AgentID  string `json:"agent_id"`
	Response string `json:"response"`
}

// =============================================================================
// GENERATION TYPES
// =============================================================================

// GenerateRequest runs a model directly, bypassing the agent layer.
type GenerateRequest struct {
	ModelID     string  `json:"model_id"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// GenerateResponse carries the raw model output.
type GenerateResponse struct {
	ModelID       string `json:"model_id"`
	GeneratedText string `json:"generated_text"`
	PromptUsed    string `json:"prompt_used"`
}

// =============================================================================
// SYSTEM TYPES
// =============================================================================

// HealthResponse is the backend's root status payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SystemStats summarizes backend-wide counters.
type SystemStats struct {
	TotalAgents         int `json:"total_agents"`
	ActiveAgents        int `json:"active_agents"`
	AvailableModels     int `json:"available_models"`
	AvailableTools      int `json:"available_tools"`
	TotalQueuedMessages int `json:"total_queued_messages"`
	ActiveConversations int `json:"active_conversations"`
}

// ModelInfo describes a model an agent can be bound to.
type ModelInfo struct {
	ID   string
	Name string
}

// apiError is the backend's error envelope.
type apiError struct {
	Detail string `json:"detail"`
}
