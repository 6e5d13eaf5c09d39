// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update routes messages to the focused surface and folds async completions
// back into the view.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case queryCompleteMsg:
		m.typing.Stop()
		if msg.err != nil {
			m.setStatus("answer failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("", false)
		}
		m.refreshViewport()
		return m, nil

	case pincodeResolvedMsg:
		if msg.err != nil {
			m.setStatus("pincode "+msg.pincode+": "+msg.err.Error(), true)
		} else {
			m.setStatus("location updated", false)
		}
		return m, nil

	case schemesMsg:
		if msg.err != nil {
			m.setStatus("schemes unavailable: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus("", false)
		m.appendInfo(schemesToMarkdown(msg.schemes))
		return m, nil

	case equipmentMsg:
		if msg.err != nil {
			m.setStatus("equipment listings unavailable: "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus("", false)
		m.appendInfo(equipmentToMarkdown(msg.pincode, msg.items))
		return m, nil

	case transcriptMsg:
		// Recognized speech lands in the input box for review, it is not
		// auto-submitted.
		m.input.SetValue(strings.TrimSpace(m.input.Value() + " " + msg.text))
		m.input.CursorEnd()
		return m, m.waitForTranscriptCmd()
	}

	var cmds []tea.Cmd
	if cmd := m.typing.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
		// The optimistic user append happens on the command goroutine, so
		// the spinner ticks double as redraw points while a query is
		// pending.
		m.refreshViewport()
	}
	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}
	return m, tea.Batch(cmds...)
}

// handleResize lays the screen out for new dimensions.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.renderer.SetWidth(msg.Width)
	m.input.Width = msg.Width - 6

	vpHeight := msg.Height - chromeHeight(m)
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.refreshViewport()
	return m, nil
}

// handleKey dispatches on the focused surface.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global bindings first.
	switch msg.String() {
	case "ctrl+c":
		m.bridge.StopListening()
		return m, tea.Quit
	case "ctrl+n":
		m.store.CreateThread(m.locale)
		m.setStatus("started a new chat", false)
		m.refreshViewport()
		return m, nil
	case "ctrl+t":
		m.mode = modeThreads
		m.threadCursor = threadIndex(m.store.Threads(), m.store.ActiveThreadID())
		return m, nil
	case "ctrl+p":
		m.mode = modePincode
		m.pincodeInput.SetValue("")
		m.pincodeInput.Focus()
		m.input.Blur()
		return m, nil
	case "ctrl+s":
		return m.toggleListening()
	}

	switch m.mode {
	case modePincode:
		return m.handlePincodeKey(msg)
	case modeThreads:
		return m.handleThreadsKey(msg)
	default:
		return m.handleChatKey(msg)
	}
}

// handleChatKey feeds the query input.
func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.input.SetValue("")

		if strings.HasPrefix(line, "/") {
			return m, m.handleCommand(line)
		}
		m.setStatus("", false)
		return m, tea.Batch(m.typing.Start(), m.submitQueryCmd(line))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePincodeKey feeds the pincode input with digit filtering.
func (m *Model) handlePincodeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.leavePincodeMode()
		return m, nil
	case tea.KeyEnter:
		raw := m.pincodeInput.Value()
		m.leavePincodeMode()
		if !model.ValidPincode(raw) {
			m.setStatus(m.locale.PincodeErrorMessage(), true)
			return m, nil
		}
		m.setStatus("resolving "+raw+"...", false)
		return m, m.resolvePincodeCmd(raw)
	}

	var cmd tea.Cmd
	m.pincodeInput, cmd = m.pincodeInput.Update(msg)
	m.sanitizePincodeInput()
	return m, cmd
}

// handleThreadsKey drives the thread picker.
func (m *Model) handleThreadsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	threads := m.store.Threads()
	switch msg.String() {
	case "esc", "q":
		m.mode = modeChat
		return m, nil
	case "up", "k":
		if m.threadCursor > 0 {
			m.threadCursor--
		}
		return m, nil
	case "down", "j":
		if m.threadCursor < len(threads)-1 {
			m.threadCursor++
		}
		return m, nil
	case "enter":
		if m.threadCursor >= 0 && m.threadCursor < len(threads) {
			m.store.SetActiveThread(threads[m.threadCursor].ID)
		}
		m.mode = modeChat
		m.refreshViewport()
		return m, nil
	}
	return m, nil
}

// toggleListening starts or stops speech recognition.
func (m *Model) toggleListening() (tea.Model, tea.Cmd) {
	if !m.bridge.Available() {
		m.setStatus("voice input is not available on this system", true)
		return m, nil
	}
	if m.bridge.IsListening() {
		m.bridge.StopListening()
		m.setStatus("stopped listening", false)
		return m, nil
	}
	if err := m.bridge.StartListening(context.Background(), m.locale); err != nil {
		m.setStatus("could not start listening: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("listening...", false)
	return m, nil
}

func (m *Model) leavePincodeMode() {
	m.mode = modeChat
	m.pincodeInput.Blur()
	m.input.Focus()
}
