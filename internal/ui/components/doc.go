// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI components for the MINI S
// console: the loading spinner, the bottom status bar, and the error
// box. Components render through the shared styles.Theme and follow
// the Bubble Tea model/update/view shape where they animate.
package components
