// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single chat entry. AI answers may carry enrichment data
// (confidence, sources, weather and market snapshots captured at answer
// time); user messages and greetings carry text only.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`

	// Answer enrichment. Zero values mean "not present"; the renderer only
	// shows the confidence line when Sources != nil or Confidence > 0.
	Confidence float64          `json:"confidence,omitempty"`
	Sources    []string         `json:"sources,omitempty"`
	Weather    *WeatherSnapshot `json:"weather,omitempty"`
	Market     []MarketPrice    `json:"market,omitempty"`
}

// NewUserMessage creates a user-authored message.
func NewUserMessage(text string) Message {
	return Message{
		ID:        generateMessageID(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAIMessage creates a plain AI message (greetings, failure notices).
func NewAIMessage(text string) Message {
	return Message{
		ID:        generateMessageID(),
		Sender:    SenderAI,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewAnswerMessage creates an AI answer carrying the enrichment returned by
// the query endpoint. The snapshots are per-message copies, independent of
// the session-level ones.
func NewAnswerMessage(text string, confidence float64, sources []string, weather *WeatherSnapshot, market []MarketPrice) Message {
	m := NewAIMessage(text)
	m.Confidence = confidence
	m.Sources = sources
	m.Weather = weather
	m.Market = market
	return m
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// generateMessageID creates a unique message identifier.
func generateMessageID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "msg_" + hex.EncodeToString([]byte(time.Now().Format("150405.000")))
	}
	return "msg_" + hex.EncodeToString(b)
}
