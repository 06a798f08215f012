// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the MINI S
// console. All colors use Lip Gloss AdaptiveColor so the palette
// follows the terminal's light or dark background automatically, and
// the Theme detects the terminal's color capability via termenv.
package styles
