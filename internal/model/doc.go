// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for agent dialogs.
//
// A Transcript is the client-side record of one conversation with one
// agent. Transcripts live only as long as their dialog: the backend
// owns all durable state, and nothing in this package is persisted.
package model
