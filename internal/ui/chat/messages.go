// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/agrisaathi/saathi-tui/internal/api"

// =============================================================================
// ASYNC COMPLETION MESSAGES
// =============================================================================

// queryCompleteMsg reports that a chat submission finished. The exchange is
// already in the store; err is non-nil when the backend could not answer.
type queryCompleteMsg struct {
	err error
}

// pincodeResolvedMsg reports that a pincode resolution settled. The store
// already holds whatever data survived.
type pincodeResolvedMsg struct {
	pincode string
	err     error
}

// schemesMsg carries the government scheme catalog.
type schemesMsg struct {
	schemes []api.Scheme
	err     error
}

// equipmentMsg carries the agri-share listings for a pincode.
type equipmentMsg struct {
	pincode string
	items   []api.Equipment
	err     error
}

// transcriptMsg carries one recognized speech utterance into the input box.
type transcriptMsg struct {
	text string
}
