// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SPEAKER TYPE
// =============================================================================

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerUser   Speaker = "user"
	SpeakerAgent  Speaker = "agent"
	SpeakerSystem Speaker = "system"
)

// String returns the string representation of the speaker.
func (s Speaker) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the speaker.
func (s Speaker) DisplayName() string {
	switch s {
	case SpeakerUser:
		return "You"
	case SpeakerAgent:
		return "Agent"
	case SpeakerSystem:
		return "System"
	default:
		return string(s)
	}
}

// =============================================================================
// ENTRY TYPE
// =============================================================================

// Entry is a single utterance in a dialog transcript.
type Entry struct {
	ID        string
	Speaker   Speaker
	Text      string
	Timestamp time.Time
}

// NewEntry creates an entry with a generated ID.
func NewEntry(speaker Speaker, text string) Entry {
	return Entry{
		ID:        generateID(),
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// Preview returns a truncated preview of the entry text.
// Uses rune-based truncation to handle Unicode correctly.
func (e Entry) Preview(maxLen int) string {
	runes := []rune(e.Text)
	if len(runes) <= maxLen {
		return e.Text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered, append-only record of one dialog with
// one agent. It is not safe for concurrent use; the owning view
// mutates it from a single update loop.
type Transcript struct {
	AgentID string
	Entries []Entry
}

// NewTranscript creates an empty transcript for the given agent.
func NewTranscript(agentID string) *Transcript {
	return &Transcript{AgentID: agentID}
}

// AddUserEntry appends what the operator typed.
func (t *Transcript) AddUserEntry(text string) Entry {
	return t.add(SpeakerUser, text)
}

// AddAgentEntry appends an agent reply.
func (t *Transcript) AddAgentEntry(text string) Entry {
	return t.add(SpeakerAgent, text)
}

// AddSystemEntry appends a client-side notice, such as a failed
// request, so the operator sees it inline with the dialog.
func (t *Transcript) AddSystemEntry(text string) Entry {
	return t.add(SpeakerSystem, text)
}

func (t *Transcript) add(speaker Speaker, text string) Entry {
	entry := NewEntry(speaker, text)
	t.Entries = append(t.Entries, entry)
	return entry
}

// Last returns the most recent entry, or nil for an empty transcript.
func (t *Transcript) Last() *Entry {
	if len(t.Entries) == 0 {
		return nil
	}
	return &t.Entries[len(t.Entries)-1]
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.Entries)
}

// IsEmpty returns true if the transcript has no entries.
func (t *Transcript) IsEmpty() bool {
	return len(t.Entries) == 0
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// generateID creates a unique entry ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "ent_" + hex.EncodeToString(bytes)
}
