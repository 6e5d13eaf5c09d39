// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// CHAT SUBMISSION
// =============================================================================

// Submit sends a chat question through the backend and records the exchange
// in the active thread. The user message is appended optimistically before
// the network call; on transport failure the thread gets the locale's
// degraded failure line instead of an answer, so the conversation always
// reflects what the user asked.
//
// The pending flag is set for the duration of the call and cleared on every
// exit path. The active thread is captured at entry: if the user switches
// threads while the answer is in flight, the answer still lands in the
// conversation that asked.
func (o *Orchestrator) Submit(ctx context.Context, queryText string, locale model.Locale, pincode string) error {
	text := strings.TrimSpace(queryText)
	if text == "" {
		return ErrEmptyQuery
	}
	if !model.ValidPincode(pincode) {
		return fmt.Errorf("%w: %q", ErrInvalidPincode, pincode)
	}

	threadID := o.store.ActiveThreadID()
	o.store.AppendMessage(threadID, model.NewUserMessage(text))

	o.setPending(true)
	defer o.setPending(false)

	resp, err := o.client.PostQuery(ctx, api.QueryRequest{
		Query:    text,
		Language: locale.String(),
		Pincode:  pincode,
	})
	if err != nil {
		o.store.AppendMessage(threadID, model.NewAIMessage(locale.QueryFailureMessage()))
		return err
	}

	var market []model.MarketPrice
	if resp.Market != nil {
		market = resp.Market.MarketData
	}
	o.store.AppendMessage(threadID, model.NewAnswerMessage(
		resp.Response,
		resp.Confidence,
		resp.Sources,
		resp.Weather,
		market,
	))
	return nil
}
