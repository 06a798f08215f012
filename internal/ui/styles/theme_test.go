// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestRenderStatus(t *testing.T) {
	// Indicators carry the state even when the terminal strips color.
	if !strings.Contains(RenderSuccess("done"), "[OK]") {
		t.Error("RenderSuccess missing [OK] indicator")
	}
	if !strings.Contains(RenderError("boom"), "[X]") {
		t.Error("RenderError missing [X] indicator")
	}
	if !strings.Contains(RenderWarning("careful"), "[!]") {
		t.Error("RenderWarning missing [!] indicator")
	}
	if !strings.Contains(RenderInfo("note"), "[i]") {
		t.Error("RenderInfo missing [i] indicator")
	}
	if !strings.Contains(RenderStatus(true, "x"), "[OK]") {
		t.Error("RenderStatus(true) missing [OK]")
	}
	if !strings.Contains(RenderStatus(false, "x"), "[X]") {
		t.Error("RenderStatus(false) missing [X]")
	}
}
