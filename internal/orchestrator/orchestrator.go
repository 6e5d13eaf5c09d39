// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"errors"
	"sync"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/session"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidPincode rejects input that is not exactly six ASCII digits.
	// Validation failures cause no state mutation and no network traffic.
	ErrInvalidPincode = errors.New("pincode must be exactly 6 digits")

	// ErrEmptyQuery rejects a submit whose text trims to nothing.
	ErrEmptyQuery = errors.New("query text is empty")

	// ErrPartialData reports that a pincode resolved but at least one of the
	// weather/market fetches failed. The surviving leg's data is kept.
	ErrPartialData = errors.New("partial contextual data")
)

// =============================================================================
// CLIENT INTERFACE
// =============================================================================

// Client is the backend surface the orchestrator needs. *api.Client
// satisfies it; tests substitute counting stubs.
type Client interface {
	PostQuery(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error)
	GetLocation(ctx context.Context, pincode string) (*model.LocationDetails, error)
	GetWeather(ctx context.Context, pincode string) (*model.WeatherSnapshot, error)
	GetMarket(ctx context.Context, pincode string) ([]model.MarketPrice, error)
}

// =============================================================================
// ORCHESTRATOR TYPE
// =============================================================================

// Orchestrator coordinates the multi-step workflows between the backend and
// the session store: pincode resolution with concurrent contextual fetches,
// and chat submission with optimistic append. It owns no session state
// itself; every durable fact lands in the store.
type Orchestrator struct {
	store  *session.Store
	client Client

	mu         sync.Mutex
	generation uint64
	pending    bool
}

// New creates an orchestrator over the given store and backend client.
func New(store *session.Store, client Client) *Orchestrator {
	return &Orchestrator{store: store, client: client}
}

// Pending reports whether a chat submission is awaiting its answer.
func (o *Orchestrator) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

func (o *Orchestrator) setPending(v bool) {
	o.mu.Lock()
	o.pending = v
	o.mu.Unlock()
}

// nextGeneration stamps a new resolution as the newest one.
func (o *Orchestrator) nextGeneration() uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.generation++
	return o.generation
}

// commitIfCurrent runs fn only if gen still identifies the newest
// resolution. Results of superseded resolutions are discarded whole; a stale
// fetch must never overwrite newer data.
func (o *Orchestrator) commitIfCurrent(gen uint64, fn func()) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		return false
	}
	fn()
	return true
}
