// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package orchestrator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/session"
)

// =============================================================================
// STUB CLIENT
// =============================================================================

// stubClient counts calls and returns canned results. Function fields
// override behavior per test; nil fields return happy-path defaults.
type stubClient struct {
	queryCalls    atomic.Int64
	locationCalls atomic.Int64
	weatherCalls  atomic.Int64
	marketCalls   atomic.Int64

	queryFn    func(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error)
	locationFn func(ctx context.Context, pincode string) (*model.LocationDetails, error)
	weatherFn  func(ctx context.Context, pincode string) (*model.WeatherSnapshot, error)
	marketFn   func(ctx context.Context, pincode string) ([]model.MarketPrice, error)
}

func (s *stubClient) PostQuery(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error) {
	s.queryCalls.Add(1)
	if s.queryFn != nil {
		return s.queryFn(ctx, req)
	}
	return &api.QueryResponse{Response: "canned answer", Confidence: 0.9, Sources: []string{"icar"}}, nil
}

func (s *stubClient) GetLocation(ctx context.Context, pincode string) (*model.LocationDetails, error) {
	s.locationCalls.Add(1)
	if s.locationFn != nil {
		return s.locationFn(ctx, pincode)
	}
	return &model.LocationDetails{District: "Pune", State: "Maharashtra"}, nil
}

func (s *stubClient) GetWeather(ctx context.Context, pincode string) (*model.WeatherSnapshot, error) {
	s.weatherCalls.Add(1)
	if s.weatherFn != nil {
		return s.weatherFn(ctx, pincode)
	}
	return &model.WeatherSnapshot{Days: []model.ForecastDay{{Date: "2026-08-30"}}}, nil
}

func (s *stubClient) GetMarket(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
	s.marketCalls.Add(1)
	if s.marketFn != nil {
		return s.marketFn(ctx, pincode)
	}
	return []model.MarketPrice{{Commodity: "Onion", ModalPrice: 1800}}, nil
}

func (s *stubClient) totalCalls() int64 {
	return s.queryCalls.Load() + s.locationCalls.Load() + s.weatherCalls.Load() + s.marketCalls.Load()
}

func newTestOrchestrator() (*Orchestrator, *session.Store, *stubClient) {
	store := session.NewStore(model.LocaleEnglish)
	client := &stubClient{}
	return New(store, client), store, client
}

// =============================================================================
// PINCODE RESOLUTION TESTS
// =============================================================================

func TestResolvePincodeInvalid(t *testing.T) {
	o, store, client := newTestOrchestrator()
	before := store.Snapshot()

	for _, raw := range []string{"", "1234", "1234567", "41100a", "४११००१"} {
		err := o.ResolvePincode(context.Background(), raw)
		if !errors.Is(err, ErrInvalidPincode) {
			t.Errorf("ResolvePincode(%q) err = %v, want ErrInvalidPincode", raw, err)
		}
	}

	if client.totalCalls() != 0 {
		t.Errorf("validation failure made %d network calls, want 0", client.totalCalls())
	}
	after := store.Snapshot()
	if after.Pincode != before.Pincode || after.Location == nil {
		t.Error("validation failure must not mutate the store")
	}
}

func TestResolvePincodeSuccess(t *testing.T) {
	o, store, _ := newTestOrchestrator()

	if err := o.ResolvePincode(context.Background(), "411001"); err != nil {
		t.Fatalf("ResolvePincode: %v", err)
	}

	snap := store.Snapshot()
	if snap.Pincode != "411001" {
		t.Errorf("pincode = %q", snap.Pincode)
	}
	if snap.Location == nil || snap.Location.District != "Pune" {
		t.Errorf("location = %+v", snap.Location)
	}
	if snap.Weather == nil || len(snap.Weather.Days) != 1 {
		t.Error("weather not committed")
	}
	if len(snap.Market) != 1 || snap.Market[0].Commodity != "Onion" {
		t.Error("market not committed")
	}
}

func TestResolvePincodeLocationFailure(t *testing.T) {
	o, store, client := newTestOrchestrator()
	lookupErr := &api.APIError{StatusCode: 404, Message: "no such pincode", Cause: api.ErrNotFound}
	client.locationFn = func(ctx context.Context, pincode string) (*model.LocationDetails, error) {
		return nil, lookupErr
	}

	err := o.ResolvePincode(context.Background(), "000000")
	if !errors.Is(err, api.ErrNotFound) {
		t.Fatalf("err = %v, want the lookup error", err)
	}

	snap := store.Snapshot()
	if snap.Location != nil || snap.Weather != nil {
		t.Error("location failure must clear location and weather")
	}
	if snap.Market == nil || len(snap.Market) != 0 {
		t.Errorf("market = %v, want empty non-nil", snap.Market)
	}
	if snap.Pincode == "000000" {
		t.Error("failed pincode must not be committed")
	}
	if client.weatherCalls.Load() != 0 || client.marketCalls.Load() != 0 {
		t.Error("no contextual fetches after a failed lookup")
	}
}

func TestResolvePincodePartialFailure(t *testing.T) {
	o, store, client := newTestOrchestrator()
	client.weatherFn = func(ctx context.Context, pincode string) (*model.WeatherSnapshot, error) {
		return nil, &api.APIError{Message: "weather down", Cause: api.ErrUnavailable}
	}

	err := o.ResolvePincode(context.Background(), "411001")
	if !errors.Is(err, ErrPartialData) {
		t.Fatalf("err = %v, want ErrPartialData", err)
	}

	snap := store.Snapshot()
	if snap.Location == nil || snap.Pincode != "411001" {
		t.Error("location commit should survive a failed leg")
	}
	if snap.Weather != nil {
		t.Error("failed weather leg must not commit")
	}
	if len(snap.Market) != 1 {
		t.Error("surviving market leg must keep its data")
	}
}

func TestResolvePincodePartialFailureClearsPreviousLeg(t *testing.T) {
	o, store, client := newTestOrchestrator()

	// Full resolution first, so the store holds weather for 110001.
	if err := o.ResolvePincode(context.Background(), "110001"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if store.Weather() == nil {
		t.Fatal("first resolve should commit weather")
	}

	client.weatherFn = func(ctx context.Context, pincode string) (*model.WeatherSnapshot, error) {
		return nil, &api.APIError{Message: "weather down", Cause: api.ErrUnavailable}
	}
	client.marketFn = func(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
		return []model.MarketPrice{{Commodity: "row-" + pincode}}, nil
	}

	err := o.ResolvePincode(context.Background(), "411001")
	if !errors.Is(err, ErrPartialData) {
		t.Fatalf("err = %v, want ErrPartialData", err)
	}

	snap := store.Snapshot()
	if snap.Weather != nil {
		t.Errorf("weather = %+v, the old pincode's forecast survived a failed leg", snap.Weather)
	}
	if len(snap.Market) != 1 || snap.Market[0].Commodity != "row-411001" {
		t.Errorf("market = %+v, want the new pincode's rows", snap.Market)
	}
	if snap.Pincode != "411001" || snap.Location == nil {
		t.Error("location commit should survive the failed leg")
	}
}

func TestResolvePincodeMarketFailureLeavesEmptyRows(t *testing.T) {
	o, store, client := newTestOrchestrator()

	if err := o.ResolvePincode(context.Background(), "110001"); err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if len(store.Market()) == 0 {
		t.Fatal("first resolve should commit market rows")
	}

	client.marketFn = func(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
		return nil, &api.APIError{Message: "market down", Cause: api.ErrUnavailable}
	}

	err := o.ResolvePincode(context.Background(), "411001")
	if !errors.Is(err, ErrPartialData) {
		t.Fatalf("err = %v, want ErrPartialData", err)
	}

	rows := store.Market()
	if rows == nil || len(rows) != 0 {
		t.Errorf("market = %+v, want empty non-nil after a failed leg", rows)
	}
	if store.Weather() == nil {
		t.Error("surviving weather leg must keep its data")
	}
}

func TestResolvePincodeEmptyMarketIsNonNil(t *testing.T) {
	o, store, client := newTestOrchestrator()
	client.marketFn = func(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
		return nil, nil
	}

	if err := o.ResolvePincode(context.Background(), "411001"); err != nil {
		t.Fatalf("ResolvePincode: %v", err)
	}
	if store.Market() == nil {
		t.Error("successful fetch with no rows must store empty non-nil")
	}
}

func TestResolvePincodeStaleDiscard(t *testing.T) {
	o, store, client := newTestOrchestrator()

	release := make(chan struct{})
	client.weatherFn = func(ctx context.Context, pincode string) (*model.WeatherSnapshot, error) {
		if pincode == "110001" {
			// First resolution's weather stalls until the second finishes.
			<-release
			return &model.WeatherSnapshot{Days: []model.ForecastDay{{Date: "stale"}}}, nil
		}
		return &model.WeatherSnapshot{Days: []model.ForecastDay{{Date: "fresh"}}}, nil
	}
	client.marketFn = func(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
		return []model.MarketPrice{{Commodity: "row-" + pincode}}, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = o.ResolvePincode(context.Background(), "110001")
	}()

	// Second resolution supersedes the first, then unblocks it.
	if err := o.ResolvePincode(context.Background(), "411001"); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	close(release)
	wg.Wait()

	snap := store.Snapshot()
	if snap.Pincode != "411001" {
		t.Errorf("pincode = %q, want the newest resolution", snap.Pincode)
	}
	if snap.Weather == nil || snap.Weather.Days[0].Date != "fresh" {
		t.Errorf("weather = %+v, stale data overwrote fresh", snap.Weather)
	}
	if len(snap.Market) != 1 || snap.Market[0].Commodity != "row-411001" {
		t.Errorf("market = %+v, want newest rows", snap.Market)
	}
}

func TestResolvePincodeIdempotent(t *testing.T) {
	o, store, _ := newTestOrchestrator()

	if err := o.ResolvePincode(context.Background(), "411001"); err != nil {
		t.Fatal(err)
	}
	if err := o.ResolvePincode(context.Background(), "411001"); err != nil {
		t.Fatalf("same-pincode re-resolve should succeed: %v", err)
	}
	if store.Pincode() != "411001" {
		t.Error("pincode lost on re-resolve")
	}
}

// =============================================================================
// CHAT SUBMISSION TESTS
// =============================================================================

func TestSubmitSuccess(t *testing.T) {
	o, store, client := newTestOrchestrator()
	client.queryFn = func(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error) {
		if req.Query != "wheat price" || req.Language != "hi" || req.Pincode != "110001" {
			t.Errorf("request = %+v", req)
		}
		return &api.QueryResponse{
			Response:   "Modal price is 2400.",
			Confidence: 0.88,
			Sources:    []string{"agmarknet"},
			Market:     &api.MarketResponse{MarketData: []model.MarketPrice{{Commodity: "Wheat"}}},
		}, nil
	}

	err := o.Submit(context.Background(), "  wheat price  ", model.LocaleHindi, "110001")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	msgs := store.ActiveThread().Messages
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want greeting + user + answer", len(msgs))
	}
	if msgs[1].Text != "wheat price" || !msgs[1].IsUser() {
		t.Errorf("user message = %+v, want trimmed text", msgs[1])
	}
	answer := msgs[2]
	if answer.Text != "Modal price is 2400." || answer.Confidence != 0.88 {
		t.Errorf("answer = %+v", answer)
	}
	if len(answer.Market) != 1 {
		t.Error("answer should carry its market snapshot")
	}
	if o.Pending() {
		t.Error("pending must clear after completion")
	}
}

func TestSubmitEmptyQuery(t *testing.T) {
	o, store, client := newTestOrchestrator()

	err := o.Submit(context.Background(), "   \t  ", model.LocaleEnglish, "110001")
	if !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("err = %v, want ErrEmptyQuery", err)
	}
	if client.totalCalls() != 0 {
		t.Error("empty query must not reach the network")
	}
	if store.ActiveThread().MessageCount() != 1 {
		t.Error("empty query must not append")
	}
}

func TestSubmitInvalidPincode(t *testing.T) {
	o, store, client := newTestOrchestrator()

	err := o.Submit(context.Background(), "hello", model.LocaleEnglish, "12")
	if !errors.Is(err, ErrInvalidPincode) {
		t.Fatalf("err = %v, want ErrInvalidPincode", err)
	}
	if client.totalCalls() != 0 || store.ActiveThread().MessageCount() != 1 {
		t.Error("invalid pincode must not append or call out")
	}
}

func TestSubmitTransportFailureDegrades(t *testing.T) {
	o, store, client := newTestOrchestrator()
	client.queryFn = func(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error) {
		return nil, &api.APIError{Message: "down", Cause: api.ErrUnavailable}
	}

	err := o.Submit(context.Background(), "help", model.LocaleMarathi, "110001")
	if !errors.Is(err, api.ErrUnavailable) {
		t.Fatalf("err = %v, want the transport error", err)
	}

	msgs := store.ActiveThread().Messages
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want user message plus degraded reply", len(msgs))
	}
	if msgs[2].Text != model.LocaleMarathi.QueryFailureMessage() {
		t.Errorf("degraded text = %q", msgs[2].Text)
	}
	if msgs[2].Sender != model.SenderAI {
		t.Error("degraded reply must come from the assistant")
	}
	if o.Pending() {
		t.Error("pending must clear on the failure path")
	}
}

func TestSubmitPendingObservableDuringFlight(t *testing.T) {
	o, _, client := newTestOrchestrator()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	client.queryFn = func(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error) {
		close(inFlight)
		<-release
		return &api.QueryResponse{Response: "ok"}, nil
	}

	done := make(chan error, 1)
	go func() {
		done <- o.Submit(context.Background(), "q", model.LocaleEnglish, "110001")
	}()

	<-inFlight
	if !o.Pending() {
		t.Error("pending should be true while the query is in flight")
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if o.Pending() {
		t.Error("pending should be false after completion")
	}
}

func TestSubmitAnswerLandsInOriginThread(t *testing.T) {
	o, store, client := newTestOrchestrator()
	origin := store.ActiveThreadID()

	client.queryFn = func(ctx context.Context, req api.QueryRequest) (*api.QueryResponse, error) {
		// User switches threads while the answer is in flight.
		store.CreateThread(model.LocaleEnglish)
		return &api.QueryResponse{Response: "late answer"}, nil
	}

	if err := o.Submit(context.Background(), "q", model.LocaleEnglish, "110001"); err != nil {
		t.Fatal(err)
	}

	originThread, ok := store.Thread(origin)
	if !ok {
		t.Fatal("origin thread missing")
	}
	if originThread.MessageCount() != 3 {
		t.Errorf("origin thread messages = %d, want 3", originThread.MessageCount())
	}
	if got := store.ActiveThread().MessageCount(); got != 1 {
		t.Errorf("new thread messages = %d, answer leaked into it", got)
	}
}
