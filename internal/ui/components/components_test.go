// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/minis-tui/internal/api"
	"github.com/jeranaias/minis-tui/internal/ui/styles"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusLoading, "Loading..."},
		{StatusThinking, "Thinking..."},
		{StatusError, "Error"},
		{StatusIdle, "Idle"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusIcon(t *testing.T) {
	if StatusReady.Icon() != styles.StatusIndicators.Success {
		t.Error("ready icon should be the success indicator")
	}
	if StatusError.Icon() != styles.StatusIndicators.Error {
		t.Error("error icon should be the error indicator")
	}
	if StatusLoading.Icon() != StatusThinking.Icon() {
		t.Error("loading and thinking share the pending indicator")
	}
}

func TestSpinnerLifecycle(t *testing.T) {
	s := NewThinkingSpinner()
	if s.IsActive() {
		t.Error("spinner should start inactive")
	}
	if s.Elapsed() != 0 {
		t.Error("inactive spinner should report zero elapsed")
	}

	cmd := s.Start()
	if cmd == nil {
		t.Error("Start should return a tick command")
	}
	if !s.IsActive() {
		t.Error("spinner should be active after Start")
	}

	s.Stop()
	if s.IsActive() {
		t.Error("spinner should be inactive after Stop")
	}
}

func TestSpinnerViewInactiveEmpty(t *testing.T) {
	theme := styles.NewTheme()
	s := NewSpinner()
	if s.View(theme) != "" {
		t.Error("inactive spinner should render nothing")
	}
}

func TestStatusBarView(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.ServerURL = "http://127.0.0.1:8000"
	bar.SetView("Agents")
	bar.SetStatus(StatusReady)
	bar.SetConnected(true)
	bar.SetWidth(100)

	out := bar.View()
	if !strings.Contains(out, "http://127.0.0.1:8000") {
		t.Error("status bar missing server URL")
	}
	if !strings.Contains(out, "Agents") {
		t.Error("status bar missing view name")
	}
	if !strings.Contains(out, "Ready") {
		t.Error("status bar missing status text")
	}
}

func TestStatusBarNarrowDropsShortcuts(t *testing.T) {
	theme := styles.NewTheme()
	bar := NewStatusBar(theme)
	bar.ServerURL = "http://127.0.0.1:8000"
	bar.SetWidth(30)

	out := bar.View()
	if strings.Contains(out, "refresh") {
		t.Error("narrow status bar should drop shortcuts")
	}
}

func TestNewErrorBox(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
	}{
		{"connection", api.ErrBackendDown, "Backend unreachable"},
		{"timeout", api.ErrTimeout, "Request timed out"},
		{"not found", api.ErrAgentNotFound, "Not found"},
		{"backend", &api.ClientError{Type: api.ErrTypeBackend, Message: "db down"}, "Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			box := NewErrorBox(tc.err)
			if box.Title != tc.wantTitle {
				t.Errorf("Title = %q, want %q", box.Title, tc.wantTitle)
			}
			if box.Message == "" {
				t.Error("Message should carry the error text")
			}
		})
	}
}

func TestErrorBoxView(t *testing.T) {
	theme := styles.NewTheme()
	box := NewErrorBox(&api.ClientError{Type: api.ErrTypeBackend, Message: "db down"})
	out := box.View(theme, 60)
	if !strings.Contains(out, "db down") {
		t.Error("rendered box missing message")
	}
}
