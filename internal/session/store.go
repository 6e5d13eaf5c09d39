// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"sync"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// STORE TYPE
// =============================================================================

// Store is the single source of truth for session state: all chat threads,
// the active thread pointer, and the pincode-bound contextual data. It is
// created once in main and shared by pointer; all methods are safe for
// concurrent use.
//
// Contextual data distinguishes "never fetched" from "fetched but empty":
// Weather() is nil until a fetch succeeds, and Market() is nil until a fetch
// completes, after which it is a non-nil (possibly empty) slice.
type Store struct {
	mu sync.RWMutex

	threads  []*model.Thread
	activeID string

	pincode  string
	location *model.LocationDetails
	weather  *model.WeatherSnapshot
	market   []model.MarketPrice
}

// Snapshot is a read-only aggregate of the session state, taken under one
// lock acquisition.
type Snapshot struct {
	ActiveThreadID string
	ThreadCount    int
	Pincode        string
	Location       *model.LocationDetails
	Weather        *model.WeatherSnapshot
	Market         []model.MarketPrice
}

// NewStore creates a store seeded with one welcome thread in the given
// locale and the default location.
func NewStore(locale model.Locale) *Store {
	first := model.NewThread(locale, true)
	return &Store{
		threads:  []*model.Thread{first},
		activeID: first.ID,
		pincode:  model.DefaultPincode,
		location: model.DefaultLocation(),
	}
}

// =============================================================================
// THREAD OPERATIONS
// =============================================================================

// CreateThread starts a new conversation seeded with the locale's new-chat
// greeting, makes it active, and returns its ID.
func (s *Store) CreateThread(locale model.Locale) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.NewThread(locale, false)
	s.threads = append(s.threads, t)
	s.activeID = t.ID
	return t.ID
}

// SetActiveThread switches the active pointer. Unknown IDs are ignored so a
// stale selection can never leave the store pointing at nothing.
func (s *Store) SetActiveThread(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findThread(id) != nil {
		s.activeID = id
	}
}

// AppendMessage adds a message to the given thread. Appending to an unknown
// thread is a silent no-op: a completion that races a thread switch must not
// crash the session or land in the wrong conversation.
func (s *Store) AppendMessage(threadID string, msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.findThread(threadID); t != nil {
		t.Append(msg)
	}
}

// ActiveThreadID returns the ID of the active thread.
func (s *Store) ActiveThreadID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// ActiveThread returns a copy of the active thread. The copy's message slice
// is detached so callers can iterate without holding any lock.
func (s *Store) ActiveThread() model.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyThread(s.findThread(s.activeID))
}

// Thread returns a copy of the thread with the given ID and whether it
// exists.
func (s *Store) Thread(id string) (model.Thread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t := s.findThread(id)
	if t == nil {
		return model.Thread{}, false
	}
	return copyThread(t), true
}

// Threads returns copies of all threads in creation order.
func (s *Store) Threads() []model.Thread {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Thread, len(s.threads))
	for i, t := range s.threads {
		out[i] = copyThread(t)
	}
	return out
}

// findThread locates a thread by ID. Caller must hold the lock.
func (s *Store) findThread(id string) *model.Thread {
	for _, t := range s.threads {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func copyThread(t *model.Thread) model.Thread {
	if t == nil {
		return model.Thread{}
	}
	cp := *t
	cp.Messages = make([]model.Message, len(t.Messages))
	copy(cp.Messages, t.Messages)
	return cp
}

// =============================================================================
// CONTEXTUAL DATA OPERATIONS
// =============================================================================

// SetPincode records the active pincode.
func (s *Store) SetPincode(pincode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pincode = pincode
}

// SetLocation records the resolved location. nil clears it.
func (s *Store) SetLocation(loc *model.LocationDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = loc
}

// SetWeather records the weather snapshot. nil clears it.
func (s *Store) SetWeather(snap *model.WeatherSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather = snap
}

// SetMarket records market rows. A non-nil empty slice means the fetch
// succeeded with no rows; nil means no data is held.
func (s *Store) SetMarket(rows []model.MarketPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.market = rows
}

// Pincode returns the active pincode.
func (s *Store) Pincode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pincode
}

// Location returns the resolved location, or nil.
func (s *Store) Location() *model.LocationDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.location == nil {
		return nil
	}
	cp := *s.location
	return &cp
}

// Weather returns the weather snapshot, or nil if none was fetched.
func (s *Store) Weather() *model.WeatherSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.weather == nil {
		return nil
	}
	cp := *s.weather
	cp.Days = make([]model.ForecastDay, len(s.weather.Days))
	copy(cp.Days, s.weather.Days)
	return &cp
}

// Market returns the market rows: nil if never fetched, a copy otherwise.
func (s *Store) Market() []model.MarketPrice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.market == nil {
		return nil
	}
	out := make([]model.MarketPrice, len(s.market))
	copy(out, s.market)
	return out
}

// Snapshot returns the full session state in one consistent read.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ActiveThreadID: s.activeID,
		ThreadCount:    len(s.threads),
		Pincode:        s.pincode,
	}
	if s.location != nil {
		loc := *s.location
		snap.Location = &loc
	}
	if s.weather != nil {
		w := *s.weather
		w.Days = make([]model.ForecastDay, len(s.weather.Days))
		copy(w.Days, s.weather.Days)
		snap.Weather = &w
	}
	if s.market != nil {
		snap.Market = make([]model.MarketPrice, len(s.market))
		copy(snap.Market, s.market)
	}
	return snap
}
