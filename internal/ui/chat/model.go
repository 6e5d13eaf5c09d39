// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/config"
	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/orchestrator"
	"github.com/agrisaathi/saathi-tui/internal/session"
	"github.com/agrisaathi/saathi-tui/internal/speech"
	"github.com/agrisaathi/saathi-tui/internal/ui/components"
	"github.com/agrisaathi/saathi-tui/internal/ui/styles"
	"github.com/agrisaathi/saathi-tui/internal/util"
)

// =============================================================================
// INPUT MODES
// =============================================================================

// inputMode selects which surface owns keystrokes.
type inputMode int

const (
	// modeChat: the query input is focused.
	modeChat inputMode = iota
	// modePincode: the pincode input is focused.
	modePincode
	// modeThreads: the thread picker is up.
	modeThreads
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat screen. It observes the session
// store and never owns conversation state itself; every durable mutation
// goes through the store or the orchestrator.
type Model struct {
	theme    *styles.Theme
	cfg      *config.Config
	store    *session.Store
	orch     *orchestrator.Orchestrator
	client   *api.Client
	bridge   speech.Bridge
	renderer *components.MessageRenderer

	input        textinput.Model
	pincodeInput textinput.Model
	viewport     viewport.Model
	typing       components.TypingIndicator

	mode         inputMode
	locale       model.Locale
	threadCursor int
	status       string
	statusIsErr  bool
	width        int
	height       int
	ready        bool
}

// New creates the chat screen model.
func New(cfg *config.Config, store *session.Store, orch *orchestrator.Orchestrator, client *api.Client, bridge speech.Bridge) *Model {
	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Ask about crops, weather, prices..."
	input.CharLimit = 500
	input.Focus()

	// No CharLimit here: a paste like "411 001" must be digit-filtered
	// before the length cap, which sanitizePincodeInput applies.
	pincodeInput := textinput.New()
	pincodeInput.Placeholder = "6-digit pincode"
	pincodeInput.Width = 12

	return &Model{
		theme:        theme,
		cfg:          cfg,
		store:        store,
		orch:         orch,
		client:       client,
		bridge:       bridge,
		renderer:     components.NewMessageRenderer(theme, 80),
		input:        input,
		pincodeInput: pincodeInput,
		typing:       components.NewTypingIndicator(),
		mode:         modeChat,
		locale:       cfg.Locale(),
	}
}

// Init starts the transcript pump when a speech engine is present and kicks
// off resolution of a configured startup pincode.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.bridge.Available() {
		cmds = append(cmds, m.waitForTranscriptCmd())
	}
	if p := m.cfg.User.Pincode; p != "" && p != m.store.Pincode() {
		cmds = append(cmds, m.resolvePincodeCmd(p))
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// HELPERS
// =============================================================================

// setStatus updates the status bar line.
func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// refreshViewport re-renders the active thread into the scroll area and
// follows the newest message.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderer.RenderThread(m.store.ActiveThread(), m.cfg.UI.ShowTimestamps))
	m.viewport.GotoBottom()
}

// sanitizePincodeInput strips anything that is not an ASCII digit from the
// pincode box, then caps it at pincode length. Filtering runs before the
// cap so "411 001" keeps all six digits.
func (m *Model) sanitizePincodeInput() {
	raw := m.pincodeInput.Value()
	clean := util.DigitsOnly(raw)
	if len(clean) > model.PincodeLength {
		clean = clean[:model.PincodeLength]
	}
	if clean != raw {
		m.pincodeInput.SetValue(clean)
	}
}

// threadIndex finds the position of a thread ID in the picker list.
func threadIndex(threads []model.Thread, id string) int {
	for i, t := range threads {
		if t.ID == id {
			return i
		}
	}
	return 0
}
