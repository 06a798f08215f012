// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard shows the backend's health and system-wide
// counters. It polls on a fixed interval while visible and degrades to
// a "backend unreachable" card when the poll fails.
package dashboard
