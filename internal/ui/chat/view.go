// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agrisaathi/saathi-tui/internal/ui/components"
	"github.com/agrisaathi/saathi-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full screen: header with location and context cards, the
// message viewport, the input area and a status line.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.mode == modeThreads {
		return m.viewThreadPicker()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.typing.Active() {
		b.WriteString(m.typing.View())
		b.WriteString("\n")
	}
	b.WriteString(m.viewInput())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	return b.String()
}

// viewHeader renders the brand line and the contextual cards.
func (m *Model) viewHeader() string {
	brand := m.theme.HeaderBrand.Render("AgriSaathi")
	location := components.LocationLine(m.theme, m.store.Pincode(), m.store.Location())
	top := m.theme.Header.Width(m.width).Render(brand + "  " + location)

	cardWidth := m.width/2 - 2
	if cardWidth < 24 {
		// Narrow terminal: skip the cards, keep the chat usable.
		return top
	}
	cards := components.JoinCards(
		components.WeatherCard(m.theme, m.store.Weather(), cardWidth),
		components.MarketCard(m.theme, m.store.Market(), cardWidth),
	)
	if cards == "" {
		return top
	}
	return top + "\n" + cards
}

// viewInput renders the focused input surface.
func (m *Model) viewInput() string {
	if m.mode == modePincode {
		prompt := m.theme.PincodePrompt.Render("pincode> ")
		return m.theme.InputContainer.Width(m.width).Render(prompt + m.pincodeInput.View())
	}

	prompt := m.theme.InputPrompt.Render("> ")
	line := prompt + m.input.View()
	if m.bridge.IsListening() {
		line += "  " + m.theme.Listening.Render("● rec")
	}
	return m.theme.InputContainer.Width(m.width).Render(line)
}

// viewStatus renders the status line or the key hints when idle.
func (m *Model) viewStatus() string {
	if m.status != "" {
		if m.statusIsErr {
			return m.theme.StatusError.Render(m.status)
		}
		return m.theme.StatusBar.Render(m.status)
	}
	return m.theme.StatusHint.Render("/help for commands · ctrl+p pincode · ctrl+n new chat · ctrl+c quit")
}

// viewThreadPicker renders the thread selection overlay.
func (m *Model) viewThreadPicker() string {
	threads := m.store.Threads()
	activeID := m.store.ActiveThreadID()

	var b strings.Builder
	b.WriteString(m.theme.HeaderBrand.Render("Chats"))
	b.WriteString("\n\n")

	for i, t := range threads {
		cursor := "  "
		if i == m.threadCursor {
			cursor = m.theme.InputPrompt.Render("> ")
		}
		marker := " "
		if t.ID == activeID {
			marker = "*"
		}
		title := util.TruncateWidth(t.Title(), m.width-20)
		line := fmt.Sprintf("%s%s %s %s", cursor, marker, title,
			m.theme.MessageMeta.Render(fmt.Sprintf("(%d messages)", t.MessageCount())))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.StatusHint.Render("enter select · esc back"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// chromeHeight counts the rows used by everything except the viewport.
func chromeHeight(m *Model) int {
	// header strip + cards (up to 8 rows) + input + status + spacing
	h := 1 + 3 + 2
	if m.store.Weather() != nil || m.store.Market() != nil {
		h += 8
	}
	return h
}
