// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the MINI S backend.
//
// All communication with the backend flows through Client: agent
// management, agent conversation, direct generation, and system
// status. The client normalizes every failure into a *ClientError
// with a typed category, so callers switch on error type instead of
// inspecting status codes or socket errors.
//
// The client makes exactly one attempt per call. Retry policy, if
// any, belongs to the caller.
//
// Example:
//
//	client := api.NewClient()
//	agents, err := client.ListAgents(ctx)
//	if api.IsConnectionError(err) {
//	    // backend is down, tell the user
//	}
package api
