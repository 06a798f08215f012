// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logs renders the backend's raw log tail in a scrollable
// viewport. The backend serves its log buffer as plain text; this view
// fetches it on demand and never tails it live.
package logs
