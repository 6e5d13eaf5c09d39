// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrisaathi/saathi-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator shows an animated "assistant is thinking" line while a
// query is pending.
type TypingIndicator struct {
	spinner spinner.Model
	active  bool
}

// NewTypingIndicator creates an indicator using the dot spinner.
func NewTypingIndicator() TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Green)
	return TypingIndicator{spinner: s}
}

// Start activates the indicator and returns the tick command that drives
// the animation.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether the indicator is showing.
func (t *TypingIndicator) Active() bool {
	return t.active
}

// Update advances the animation. Tick messages are ignored while inactive
// so a stopped spinner does not keep scheduling frames.
func (t *TypingIndicator) Update(msg tea.Msg) tea.Cmd {
	if !t.active {
		return nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// View renders the indicator line, or empty when inactive.
func (t *TypingIndicator) View() string {
	if !t.active {
		return ""
	}
	return t.spinner.View() + lipgloss.NewStyle().Foreground(styles.TextMuted).Render("thinking...")
}
