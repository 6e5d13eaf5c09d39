// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header        lipgloss.Style
	HeaderBrand   lipgloss.Style
	HeaderPincode lipgloss.Style

	// ==========================================================================
	// CONTEXT CARD STYLES
	// ==========================================================================

	WeatherCard lipgloss.Style
	MarketCard  lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	MessageMeta     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style
	PincodePrompt  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	StatusHint  lipgloss.Style
	Listening   lipgloss.Style
}

// NewTheme builds a theme for the current terminal.
func NewTheme() *Theme {
	profile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	t.initStyles()
	return t
}

func (t *Theme) initStyles() {
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 1)
	t.HeaderBrand = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)
	t.HeaderPincode = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.WeatherCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Sky).
		Padding(0, 1)
	t.MarketCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Earth).
		Padding(0, 1)
	t.CardTitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)
	t.CardBody = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.UserBubble = lipgloss.NewStyle().
		Background(UserBubbleBg).
		Foreground(UserBubbleFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)
	t.AssistantBubble = lipgloss.NewStyle().
		Background(AssistantBubbleBg).
		Foreground(AssistantBubbleFg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)
	t.MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.InputContainer = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(Overlay).
		Padding(0, 1)
	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)
	t.PincodePrompt = lipgloss.NewStyle().
		Foreground(Sky).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary)
	t.StatusError = lipgloss.NewStyle().
		Foreground(Rose)
	t.StatusHint = lipgloss.NewStyle().
		Foreground(TextMuted)
	t.Listening = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
