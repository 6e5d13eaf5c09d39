// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// PINCODE RESOLUTION
// =============================================================================

// ResolvePincode validates raw, resolves it to a location, and fans out to
// the weather and market endpoints concurrently. Each result is committed to
// the store independently as it arrives, guarded by a generation check so a
// slower, older resolution can never overwrite a newer one.
//
// Outcomes:
//   - malformed input: ErrInvalidPincode, nothing touched, no network
//   - location lookup fails: location/weather cleared, market set to empty,
//     the normalized lookup error returned
//   - location ok, a contextual leg fails: the failed leg is cleared, the
//     surviving leg's data kept, ErrPartialData returned
//   - superseded by a newer resolution: results discarded, nil returned
//
// Resolving the already-active pincode again is allowed and idempotent.
func (o *Orchestrator) ResolvePincode(ctx context.Context, raw string) error {
	if !model.ValidPincode(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidPincode, raw)
	}

	gen := o.nextGeneration()

	loc, err := o.client.GetLocation(ctx, raw)
	if err != nil {
		// Unknown or unreachable pincode: clear the contextual tuple so the
		// UI does not keep showing data for a place the user navigated away
		// from. Market becomes empty-not-nil; there is nothing left to fetch.
		o.commitIfCurrent(gen, func() {
			o.store.SetLocation(nil)
			o.store.SetWeather(nil)
			o.store.SetMarket([]model.MarketPrice{})
		})
		return err
	}

	if !o.commitIfCurrent(gen, func() {
		o.store.SetPincode(raw)
		o.store.SetLocation(loc)
	}) {
		return nil
	}

	// Weather and market are independent: each leg commits on its own, so
	// one failing does not cost the other its data.
	var weatherErr, marketErr error
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap, err := o.client.GetWeather(gctx, raw)
		if err != nil {
			weatherErr = err
			// Clear the leg rather than keep a forecast for the previous
			// pincode next to the new location.
			o.commitIfCurrent(gen, func() { o.store.SetWeather(nil) })
			return nil
		}
		o.commitIfCurrent(gen, func() { o.store.SetWeather(snap) })
		return nil
	})

	g.Go(func() error {
		rows, err := o.client.GetMarket(gctx, raw)
		if err != nil {
			marketErr = err
			o.commitIfCurrent(gen, func() { o.store.SetMarket([]model.MarketPrice{}) })
			return nil
		}
		if rows == nil {
			rows = []model.MarketPrice{}
		}
		o.commitIfCurrent(gen, func() { o.store.SetMarket(rows) })
		return nil
	})

	_ = g.Wait()

	if weatherErr != nil || marketErr != nil {
		return fmt.Errorf("%w: weather=%v market=%v", ErrPartialData, weatherErr, marketErr)
	}
	return nil
}
