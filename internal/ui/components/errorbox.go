// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BOX COMPONENT
// =============================================================================

// ErrorBox renders a failure notice with a short hint on what to do
// next. It stays on screen until the next successful operation.
type ErrorBox struct {
	Title   string
	Message string
	Hint    string
}

// NewErrorBox builds an error box from any error, deriving the title
// and hint from the client error category when available.
func NewErrorBox(err error) ErrorBox {
	box := ErrorBox{
		Title:   "Error",
		Message: err.Error(),
	}

	switch {
	case api.IsConnectionError(err):
		box.Title = "Backend unreachable"
		box.Hint = "Check that the MINI S backend is running, then press r to retry."
	case api.IsTimeout(err):
		box.Title = "Request timed out"
		box.Hint = "The backend may be busy loading a model. Press r to retry."
	case api.IsNotFound(err):
		box.Title = "Not found"
		box.Hint = "The agent may have been deleted elsewhere. Press r to refresh."
	}

	return box
}

// View renders the error box.
func (e ErrorBox) View(theme *styles.Theme, width int) string {
	content := theme.ErrorTitle.Render(styles.StatusIndicators.Error+" "+e.Title) + "\n" +
		theme.ErrorMessage.Render(e.Message)
	if e.Hint != "" {
		content += "\n" + theme.ShortcutDesc.Render(e.Hint)
	}

	box := theme.ErrorBox
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(content)
}
