// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea model for the saathi chat screen.
//
// The model is a thin observer over the session store: keystrokes become
// orchestrator calls running as tea.Cmds, and their completion messages
// trigger a re-render of whatever the store holds by then. The model never
// keeps its own copy of conversation or contextual state.
//
// # Surfaces
//
//   - chat mode: the query input, with slash commands (/new, /threads,
//     /lang, /schemes, /equipment, /speak, /help)
//   - pincode mode (ctrl+p): a digit-filtered 6-character input
//   - thread picker (ctrl+t): switch between conversations
//
// Voice input (ctrl+s) toggles the speech bridge when one is available;
// recognized utterances land in the input box for review rather than being
// submitted directly. /speak reads the newest assistant message aloud
// through the same bridge.
package chat
