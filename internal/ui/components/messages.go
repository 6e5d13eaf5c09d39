// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE RENDERER
// =============================================================================

// MessageRenderer turns thread messages into styled terminal output. AI
// answers render through glamour so markdown in the response (lists, bold
// crop names, tables of doses) displays properly.
type MessageRenderer struct {
	theme    *styles.Theme
	markdown *glamour.TermRenderer
	width    int
}

// NewMessageRenderer creates a renderer wrapping at the given width.
func NewMessageRenderer(theme *styles.Theme, width int) *MessageRenderer {
	r := &MessageRenderer{theme: theme, width: width}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(bubbleWidth(width)),
	)
	if err == nil {
		r.markdown = md
	}
	return r
}

// SetWidth rebuilds the word-wrap for a resized terminal.
func (r *MessageRenderer) SetWidth(width int) {
	if width == r.width {
		return
	}
	r.width = width
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(bubbleWidth(width)),
	)
	if err == nil {
		r.markdown = md
	}
}

// RenderThread renders a full conversation, oldest first.
func (r *MessageRenderer) RenderThread(th model.Thread, showTimestamps bool) string {
	var b strings.Builder
	for i, msg := range th.Messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Render(msg, showTimestamps))
		b.WriteString("\n")
	}
	return b.String()
}

// Render renders one message bubble with its meta line.
func (r *MessageRenderer) Render(msg model.Message, showTimestamp bool) string {
	var b strings.Builder

	if msg.IsUser() {
		b.WriteString(r.theme.UserBubble.MaxWidth(bubbleWidth(r.width)).Render(msg.Text))
	} else {
		b.WriteString(r.theme.AssistantBubble.MaxWidth(bubbleWidth(r.width)).Render(r.renderAIText(msg.Text)))
	}

	meta := r.metaLine(msg, showTimestamp)
	if meta != "" {
		b.WriteString("\n")
		b.WriteString(r.theme.MessageMeta.Render(meta))
	}
	return b.String()
}

// renderAIText runs the answer through the markdown renderer, falling back
// to the raw text if rendering fails.
func (r *MessageRenderer) renderAIText(text string) string {
	if r.markdown == nil {
		return text
	}
	out, err := r.markdown.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

// metaLine builds the subtext under a bubble: timestamp, confidence and
// sources when the answer carries them.
func (r *MessageRenderer) metaLine(msg model.Message, showTimestamp bool) string {
	var parts []string
	if showTimestamp {
		parts = append(parts, msg.Timestamp.Format("15:04"))
	}
	if msg.Sources != nil || msg.Confidence > 0 {
		parts = append(parts, fmt.Sprintf("confidence %.0f%%", msg.Confidence*100))
		if len(msg.Sources) > 0 {
			parts = append(parts, "sources: "+strings.Join(msg.Sources, ", "))
		}
	}
	return strings.Join(parts, "  ·  ")
}

// bubbleWidth keeps bubbles readable on wide terminals.
func bubbleWidth(termWidth int) int {
	w := termWidth - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}
