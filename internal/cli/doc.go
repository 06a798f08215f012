// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface: argument
// parsing, plain-mode handlers for scripting, and the line-oriented
// chat REPL. Every handler talks to the MINI S backend through the
// api client; nothing here keeps durable state except the REPL input
// history.
package cli
