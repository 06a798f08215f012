// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "context"

// fallbackModels is the static catalog used while the backend has no
// model listing endpoint. Keep the IDs in sync with the backend's
// config.yaml.
var fallbackModels = []ModelInfo{
	{ID: "qwen-7b-chat-gguf", Name: "Qwen 7B Chat (GGUF)"},
	{ID: "llama2-7b-chat-hf", Name: "Llama 2 7B Chat (HF)"},
	{ID: "mistral-7b-instruct-gguf", Name: "Mistral 7B Instruct (GGUF)"},
}

// ListModels returns the models an agent can be bound to.
//
// TODO: switch to GET /api/v1/models once the backend exposes its
// loaded model registry; until then this serves the static fallback
// and never fails.
func (c *Client) ListModels(ctx context.Context) ([]ModelInfo, error) {
	models := make([]ModelInfo, len(fallbackModels))
	copy(models, fallbackModels)
	return models, nil
}

// CatalogIsFallback reports whether ListModels serves the static
// fallback rather than a live backend catalog.
func (c *Client) CatalogIsFallback() bool {
	return true
}
