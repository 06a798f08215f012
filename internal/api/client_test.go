// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Logger:  log.New(io.Discard, "", 0),
	})
}

// =============================================================================
// CONFIGURATION TESTS
// =============================================================================

func TestNewClientWithConfig_Defaults(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{})

	if client.config.BaseURL != "http://127.0.0.1:8000" {
		t.Errorf("BaseURL = %q, want default", client.config.BaseURL)
	}
	if client.config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", client.config.Timeout)
	}
}

func TestNewClientWithConfig_NilConfig(t *testing.T) {
	client := NewClientWithConfig(nil)
	if client.config.BaseURL == "" {
		t.Error("nil config should fall back to defaults")
	}
}

// =============================================================================
// ERROR NORMALIZATION TESTS
// =============================================================================

func TestStatusError_Normalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantType    ErrorType
	}{
		{
			name:        "detail envelope wins",
			status:      http.StatusInternalServerError,
			body:        `{"detail": "db down"}`,
			wantMessage: "db down",
			wantType:    ErrTypeBackend,
		},
		{
			name:        "404 maps to not found",
			status:      http.StatusNotFound,
			body:        `{"detail": "Agent with ID 'x' not found."}`,
			wantMessage: "Agent with ID 'x' not found.",
			wantType:    ErrTypeNotFound,
		},
		{
			name:        "non-JSON body used raw",
			status:      http.StatusBadGateway,
			body:        "  upstream exploded\n",
			wantMessage: "upstream exploded",
			wantType:    ErrTypeBackend,
		},
		{
			name:        "empty detail falls through to raw body",
			status:      http.StatusInternalServerError,
			body:        `{"detail": ""}`,
			wantMessage: `{"detail": ""}`,
			wantType:    ErrTypeBackend,
		},
		{
			name:        "empty body falls back to status code",
			status:      http.StatusBadGateway,
			body:        "",
			wantMessage: "HTTP error 502",
			wantType:    ErrTypeBackend,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.ListAgents(context.Background())

			var clientErr *ClientError
			require.ErrorAs(t, err, &clientErr)
			if clientErr.Message != tc.wantMessage {
				t.Errorf("Message = %q, want %q", clientErr.Message, tc.wantMessage)
			}
			if clientErr.Type != tc.wantType {
				t.Errorf("Type = %d, want %d", clientErr.Type, tc.wantType)
			}
		})
	}
}

func TestConnectionError(t *testing.T) {
	// Port 1 is never listening.
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.ListAgents(context.Background())

	if !IsConnectionError(err) {
		t.Errorf("IsConnectionError = false for %v", err)
	}
	if IsTimeout(err) || IsNotFound(err) {
		t.Error("connection error misclassified")
	}
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.ListAgents(ctx)
	if !IsTimeout(err) {
		t.Errorf("IsTimeout = false for %v", err)
	}
}

func TestDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListAgents(context.Background())

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, ErrTypeDecode, clientErr.Type)
}

// =============================================================================
// AGENT OPERATION TESTS
// =============================================================================

func TestListAgents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/agents" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"agent_id": "a1", "name": "PythonExpert", "role": "coder", "model_id": "qwen-7b-chat-gguf"},
			{"agent_id": "a2", "name": "Researcher", "role": "analyst", "model_id": "mistral-7b-instruct-gguf"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "a1", agents[0].AgentID)
	assert.Equal(t, "PythonExpert", agents[0].Name)
}

func TestListAgents_Empty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	agents, err := client.ListAgents(context.Background())
	require.NoError(t, err)
	if len(agents) != 0 {
		t.Errorf("len(agents) = %d, want 0", len(agents))
	}
}

func TestCreateAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/agents" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}

		var req CreateAgentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "PythonExpert" {
			t.Errorf("Name = %q", req.Name)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Agent{
			AgentID: "agent-123",
			Name:    req.Name,
			Role:    req.Role,
			ModelID: req.ModelID,
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	agent, err := client.CreateAgent(context.Background(), CreateAgentRequest{
		Name:    "PythonExpert",
		Role:    "A world-class Python programmer.",
		ModelID: "qwen-7b-chat-gguf",
	})
	require.NoError(t, err)
	assert.Equal(t, "agent-123", agent.AgentID)
}

func TestDeleteAgent_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/agents/a1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.DeleteAgent(context.Background(), "a1"); err != nil {
		t.Errorf("DeleteAgent returned %v, want nil", err)
	}
}

func TestThink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/agents/a1/think" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			t.Fatalf("unmarshal request: %v", err)
		}
		if _, present := raw["generation_config"]; present {
			t.Error("generation_config should be omitted when nil")
		}

		json.NewEncoder(w).Encode(ThinkResponse{AgentID: "a1", Response: "  hello there  "})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Think(context.Background(), "a1", "hi", nil)
	require.NoError(t, err)

	// The transport hands the reply back untouched; trimming is a
	// presentation concern.
	assert.Equal(t, "  hello there  ", resp.Response)
}

func TestThink_WithGenerationConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ThinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.MaxTokens != 256 {
			t.Errorf("GenerationConfig = %+v, want MaxTokens 256", req.GenerationConfig)
		}
		json.NewEncoder(w).Encode(ThinkResponse{AgentID: "a1", Response: "ok"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Think(context.Background(), "a1", "hi", &GenerationConfig{MaxTokens: 256, Temperature: 0.2})
	require.NoError(t, err)
}

// =============================================================================
// SYSTEM OPERATION TESTS
// =============================================================================

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"status": "ok", "message": "MINI S Backend is running."}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestSystemStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_agents": 3, "active_agents": 2, "available_models": 4, "available_tools": 7, "total_queued_messages": 0, "active_conversations": 1}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	stats, err := client.SystemStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAgents)
	assert.Equal(t, 4, stats.AvailableModels)
}

func TestSystemLogs_RawText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/logs" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte("INFO startup\nINFO agent a1 created\n"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	logs, err := client.SystemLogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INFO startup\nINFO agent a1 created\n", logs)
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(GenerateResponse{
			ModelID:       "qwen-7b-chat-gguf",
			GeneratedText: "four",
			PromptUsed:    "2+2?",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		ModelID: "qwen-7b-chat-gguf",
		Prompt:  "2+2?",
	})
	require.NoError(t, err)
	assert.Equal(t, "four", resp.GeneratedText)
}

// =============================================================================
// MODEL CATALOG TESTS
// =============================================================================

func TestListModels_Fallback(t *testing.T) {
	client := NewClient()

	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) == 0 {
		t.Fatal("fallback catalog is empty")
	}
	if !client.CatalogIsFallback() {
		t.Error("CatalogIsFallback = false, want true")
	}

	found := false
	for _, m := range models {
		if m.ID == "qwen-7b-chat-gguf" {
			found = true
		}
	}
	if !found {
		t.Error("fallback catalog missing qwen-7b-chat-gguf")
	}

	// Callers get their own copy.
	models[0].ID = "mutated"
	again, _ := client.ListModels(context.Background())
	if again[0].ID == "mutated" {
		t.Error("ListModels returned shared backing array")
	}
}
