// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agents provides the agent roster view for the MINI S
// console: the agent list, the create form, the delete confirmation,
// and the chat dialog.
//
// The view is a Bubble Tea model with a small state machine. The list
// is always in exactly one of four states (idle, loading, loaded,
// error), and at most one modal is layered on top of it. Backend
// calls run as commands; their completion messages are checked
// against the state that issued them, so a reply for a dialog the
// operator already closed is dropped instead of mutating the wrong
// screen.
package agents
