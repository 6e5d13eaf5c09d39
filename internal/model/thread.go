// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// THREAD TYPE
// =============================================================================

// Thread is one conversation: an ordered message history plus bookkeeping
// for the thread picker. Threads are append-only; messages are never edited
// or removed once committed.
type Thread struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewThread creates a thread seeded with the locale greeting. The first
// thread of a session uses the full welcome; later threads use the shorter
// new-chat greeting.
func NewThread(locale Locale, first bool) *Thread {
	greeting := locale.NewChatMessage()
	if first {
		greeting = locale.WelcomeMessage()
	}
	now := time.Now()
	return &Thread{
		ID:        uuid.New().String(),
		Messages:  []Message{NewAIMessage(greeting)},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Append adds a message to the end of the thread.
func (t *Thread) Append(msg Message) {
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = time.Now()
}

// Title returns a short label for the thread picker: the first user message,
// truncated, or "New chat" when the user has not written anything yet.
func (t *Thread) Title() string {
	for _, m := range t.Messages {
		if m.IsUser() {
			return truncateTitle(m.Text)
		}
	}
	return "New chat"
}

// MessageCount returns the number of messages in the thread.
func (t Thread) MessageCount() int {
	return len(t.Messages)
}

const maxTitleRunes = 40

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTitleRunes {
		return s
	}
	return string(runes[:maxTitleRunes-3]) + "..."
}
