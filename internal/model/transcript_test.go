// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
)

func TestSpeakerDisplayName(t *testing.T) {
	tests := []struct {
		speaker Speaker
		want    string
	}{
		{SpeakerUser, "You"},
		{SpeakerAgent, "Agent"},
		{SpeakerSystem, "System"},
		{Speaker("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.speaker.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tc.speaker, got, tc.want)
		}
	}
}

func TestTranscriptAppendOrder(t *testing.T) {
	tr := NewTranscript("a1")
	tr.AddUserEntry("hello")
	tr.AddAgentEntry("hi there")
	tr.AddSystemEntry("backend unreachable")

	if tr.Len() != 3 {
		t.Fatalf("Len = %d, want 3", tr.Len())
	}

	speakers := []Speaker{SpeakerUser, SpeakerAgent, SpeakerSystem}
	for i, want := range speakers {
		if tr.Entries[i].Speaker != want {
			t.Errorf("Entries[%d].Speaker = %q, want %q", i, tr.Entries[i].Speaker, want)
		}
	}

	last := tr.Last()
	if last == nil || last.Text != "backend unreachable" {
		t.Errorf("Last = %+v, want system entry", last)
	}
}

func TestTranscriptEmpty(t *testing.T) {
	tr := NewTranscript("a1")
	if !tr.IsEmpty() {
		t.Error("new transcript should be empty")
	}
	if tr.Last() != nil {
		t.Error("Last on empty transcript should be nil")
	}
}

func TestEntryIDsUnique(t *testing.T) {
	tr := NewTranscript("a1")
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := tr.AddUserEntry("x")
		if !strings.HasPrefix(e.ID, "ent_") {
			t.Fatalf("ID = %q, want ent_ prefix", e.ID)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate entry ID %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestEntryPreview(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		maxLen int
		want   string
	}{
		{"short text unchanged", "hello", 10, "hello"},
		{"long text truncated", "hello world", 8, "hello..."},
		{"unicode safe", "héllo wörld", 8, "héllo..."},
		{"exact length unchanged", "hello", 5, "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := Entry{Text: tc.text}
			if got := e.Preview(tc.maxLen); got != tc.want {
				t.Errorf("Preview(%d) = %q, want %q", tc.maxLen, got, tc.want)
			}
		})
	}
}
