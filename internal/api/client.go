// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents a failure from the MINI S backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeNotFound
	ErrTypeBackend
	ErrTypeDecode
)

// Sentinel errors for easy checking.
var (
	ErrBackendDown   = &ClientError{Type: ErrTypeConnection, Message: "MINI S backend is not reachable"}
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrAgentNotFound = &ClientError{Type: ErrTypeNotFound, Message: "agent not found"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:8000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration

	// Logger receives one line per failed request before the error
	// propagates. Defaults to a stderr logger.
	Logger *log.Logger
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the MINI S backend API.
//
// The Client is thread-safe for concurrent use. Every call makes a
// single attempt; failures are normalized to *ClientError and logged
// before they are returned, never swallowed.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Client{
		config: config,
		logger: logger,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// doJSON performs one request and decodes a JSON response into out.
// A nil out skips decoding. 204 No Content always resolves without
// touching the body, regardless of out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(method, path, resp)
	}
	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		apiErr := &ClientError{Type: ErrTypeDecode, Message: "failed to decode response", Cause: err}
		c.logger.Printf("api: %s %s: %v", method, path, apiErr)
		return apiErr
	}
	return nil
}

// doText performs one request and returns the response body verbatim.
func (c *Client) doText(ctx context.Context, method, path string) (string, error) {
	resp, err := c.do(ctx, method, path, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.statusError(method, path, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &ClientError{Type: ErrTypeDecode, Message: "failed to read response", Cause: err}
		c.logger.Printf("api: %s %s: %v", method, path, apiErr)
		return "", apiErr
	}
	return string(data), nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &ClientError{Type: ErrTypeDecode, Message: "failed to marshal request", Cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Printf("api: %s %s: timed out after %s", method, path, c.config.Timeout)
			return nil, ErrTimeout
		}
		c.logger.Printf("api: %s %s: %v", method, path, err)
		return nil, &ClientError{Type: ErrTypeConnection, Message: "MINI S backend is not reachable", Cause: err}
	}
	return resp, nil
}

// statusError turns a non-2xx response into a ClientError. The backend
// reports failures as {"detail": "..."}; when that envelope is absent
// the raw body stands in, and a bare status code is the last resort.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	errType := ErrTypeBackend
	if resp.StatusCode == http.StatusNotFound {
		errType = ErrTypeNotFound
	}

	message := "HTTP error " + strconv.Itoa(resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	if err == nil && len(data) > 0 {
		var envelope apiError
		if json.Unmarshal(data, &envelope) == nil && envelope.Detail != "" {
			message = envelope.Detail
		} else if raw := strings.TrimSpace(string(data)); raw != "" {
			message = raw
		}
	}

	apiErr := &ClientError{Type: errType, Message: message}
	c.logger.Printf("api: %s %s: status %d: %s", method, path, resp.StatusCode, message)
	return apiErr
}

// =============================================================================
// STATUS OPERATIONS
// =============================================================================

// Health verifies that the backend is reachable and running.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var result HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SystemStats retrieves backend-wide counters for the dashboard.
func (c *Client) SystemStats(ctx context.Context) (*SystemStats, error) {
	var result SystemStats
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/system/stats", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SystemLogs retrieves the backend's log tail as plain text.
func (c *Client) SystemLogs(ctx context.Context) (string, error) {
	return c.doText(ctx, http.MethodGet, "/logs")
}

// =============================================================================
// AGENT OPERATIONS
// =============================================================================

// ListAgents retrieves all registered agents.
func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var result []Agent
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/agents", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAgent retrieves one agent by ID.
func (c *Client) GetAgent(ctx context.Context, agentID string) (*Agent, error) {
	var result Agent
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/agents/"+agentID, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateAgent registers a new agent and returns the backend's record
// of it, including the assigned agent_id.
func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (*Agent, error) {
	var result Agent
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/agents", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAgent removes an agent. The backend answers 204 on success.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/v1/agents/"+agentID, nil, nil)
}

// Think sends a prompt through an agent's reasoning loop and returns
// its reply. The response text is returned exactly as the backend
// produced it; presentation-level trimming is the caller's concern.
func (c *Client) Think(ctx context.Context, agentID, prompt string, cfg *GenerationConfig) (*ThinkResponse, error) {
	req := ThinkRequest{Prompt: prompt, GenerationConfig: cfg}
	var result ThinkResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/agents/"+agentID+"/think", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// GENERATION OPERATIONS
// =============================================================================

// Generate runs a model directly, bypassing the agent layer.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var result GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/generate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound checks if an error is a not-found error.
func IsNotFound(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNotFound
	}
	return errors.Is(err, ErrAgentNotFound)
}

// IsConnectionError checks if an error indicates the backend is unreachable.
func IsConnectionError(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeConnection
	}
	return errors.Is(err, ErrBackendDown)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}
