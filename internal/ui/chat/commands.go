// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/util"
)

// =============================================================================
// ASYNC COMMANDS
// =============================================================================

// submitQueryCmd runs the chat submission off the UI goroutine. The store is
// updated by the orchestrator; the completion message only signals a redraw.
func (m *Model) submitQueryCmd(text string) tea.Cmd {
	locale := m.locale
	pincode := m.store.Pincode()
	return func() tea.Msg {
		err := m.orch.Submit(context.Background(), text, locale, pincode)
		return queryCompleteMsg{err: err}
	}
}

// resolvePincodeCmd runs pincode resolution in the background.
func (m *Model) resolvePincodeCmd(pincode string) tea.Cmd {
	return func() tea.Msg {
		err := m.orch.ResolvePincode(context.Background(), pincode)
		return pincodeResolvedMsg{pincode: pincode, err: err}
	}
}

// fetchSchemesCmd loads the scheme catalog.
func (m *Model) fetchSchemesCmd() tea.Cmd {
	return func() tea.Msg {
		schemes, err := m.client.GetSchemes(context.Background())
		return schemesMsg{schemes: schemes, err: err}
	}
}

// fetchEquipmentCmd loads agri-share listings for the active pincode.
func (m *Model) fetchEquipmentCmd(pincode string) tea.Cmd {
	return func() tea.Msg {
		items, err := m.client.ListEquipment(context.Background(), pincode)
		return equipmentMsg{pincode: pincode, items: items, err: err}
	}
}

// speakCmd synthesizes text off the UI goroutine. Speak is fire-and-forget;
// there is no completion to fold back into the view.
func (m *Model) speakCmd(text string) tea.Cmd {
	bridge := m.bridge
	return func() tea.Msg {
		_ = bridge.Speak(context.Background(), text)
		return nil
	}
}

// waitForTranscriptCmd blocks on the speech bridge's transcript channel and
// re-arms itself after each delivery.
func (m *Model) waitForTranscriptCmd() tea.Cmd {
	transcripts := m.bridge.Transcripts()
	return func() tea.Msg {
		text, ok := <-transcripts
		if !ok {
			return nil
		}
		return transcriptMsg{text: text}
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleCommand dispatches a "/..." input line. Returns the command to run,
// or nil when the input handled itself synchronously.
func (m *Model) handleCommand(line string) tea.Cmd {
	fields := strings.Fields(line)
	name := fields[0]
	args := fields[1:]

	switch name {
	case "/new":
		m.store.CreateThread(m.locale)
		m.setStatus("started a new chat", false)
		m.refreshViewport()
		return nil

	case "/threads":
		m.mode = modeThreads
		m.threadCursor = threadIndex(m.store.Threads(), m.store.ActiveThreadID())
		return nil

	case "/lang":
		if len(args) != 1 || !model.Locale(args[0]).Valid() {
			m.setStatus("usage: /lang en|hi|mr", true)
			return nil
		}
		m.locale = model.Locale(args[0])
		m.setStatus("language set to "+args[0], false)
		return nil

	case "/schemes":
		m.setStatus("fetching schemes...", false)
		return m.fetchSchemesCmd()

	case "/equipment":
		m.setStatus("fetching equipment listings...", false)
		return m.fetchEquipmentCmd(m.store.Pincode())

	case "/speak":
		return m.speakLatestAnswer()

	case "/help":
		m.appendInfo(helpText)
		return nil

	default:
		m.setStatus("unknown command "+name, true)
		return nil
	}
}

const helpText = `**Commands**
- /new - start a new chat
- /threads - switch between chats
- /lang en|hi|mr - change language
- /schemes - list government schemes
- /equipment - equipment for rent near you
- /speak - read the last answer aloud
- /help - this help

**Keys**: ctrl+p set pincode, ctrl+n new chat, ctrl+t threads, ctrl+s voice input, ctrl+c quit`

// speakLatestAnswer reads the newest assistant message in the active thread
// aloud. The voice is picked from the message text's script by the bridge.
func (m *Model) speakLatestAnswer() tea.Cmd {
	if !m.bridge.Available() {
		m.setStatus("voice output is not available on this system", true)
		return nil
	}
	text := latestAnswerText(m.store.ActiveThread())
	if text == "" {
		m.setStatus("no answer to read yet", true)
		return nil
	}
	m.setStatus("speaking...", false)
	return m.speakCmd(text)
}

// latestAnswerText finds the newest assistant message in a thread.
func latestAnswerText(th model.Thread) string {
	for i := len(th.Messages) - 1; i >= 0; i-- {
		if th.Messages[i].Sender == model.SenderAI {
			return th.Messages[i].Text
		}
	}
	return ""
}

// appendInfo adds an informational assistant message to the active thread.
func (m *Model) appendInfo(text string) {
	m.store.AppendMessage(m.store.ActiveThreadID(), model.NewAIMessage(text))
	m.refreshViewport()
}

// =============================================================================
// RESULT FORMATTING
// =============================================================================

// schemesToMarkdown renders the scheme catalog as a markdown list.
func schemesToMarkdown(schemes []api.Scheme) string {
	if len(schemes) == 0 {
		return "No schemes available right now."
	}
	var b strings.Builder
	b.WriteString("**Government Schemes**\n")
	for _, s := range schemes {
		fmt.Fprintf(&b, "\n- **%s**", s.Name)
		if s.Category != "" {
			fmt.Fprintf(&b, " _[%s]_", s.Category)
		}
		fmt.Fprintf(&b, ": %s", s.Description)
	}
	return b.String()
}

// equipmentToMarkdown renders agri-share listings for the chat.
func equipmentToMarkdown(pincode string, items []api.Equipment) string {
	if len(items) == 0 {
		return fmt.Sprintf("No equipment listed near %s.", pincode)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "**Equipment for rent near %s**\n", pincode)
	for _, e := range items {
		fmt.Fprintf(&b, "\n- **%s** - ₹%s/day, contact %s (%s)",
			e.Name,
			util.FloatToString(e.PricePerDay),
			e.ContactName,
			e.ContactPhone,
		)
	}
	return b.String()
}
