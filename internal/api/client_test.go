// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithTimeout(5*time.Second))
}

// =============================================================================
// CORE ENDPOINT TESTS
// =============================================================================

func TestPostQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/query", r.URL.Path)

		var req QueryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "leaf rust treatment", req.Query)
		assert.Equal(t, "hi", req.Language)
		assert.Equal(t, "411001", req.Pincode)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"response":   "Use a triazole fungicide.",
			"confidence": 0.87,
			"sources":    []string{"icar", "kvk"},
			"weather":    nil,
			"market":     nil,
		})
	})

	resp, err := client.PostQuery(context.Background(), QueryRequest{
		Query:    "leaf rust treatment",
		Language: "hi",
		Pincode:  "411001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Use a triazole fungicide.", resp.Response)
	assert.InDelta(t, 0.87, resp.Confidence, 1e-9)
	assert.Equal(t, []string{"icar", "kvk"}, resp.Sources)
	assert.Nil(t, resp.Weather)
}

func TestGetWeather(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weather", r.URL.Path)
		require.Equal(t, "110001", r.URL.Query().Get("pincode"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"forecast":[
			{"date":"2026-08-30","date_epoch":1788048000,
			 "day":{"avgtemp_c":31.2,"maxtemp_c":35.0,"mintemp_c":27.4,
			        "condition":{"text":"Partly cloudy","icon":"//cdn/116.png"}}}
		]}`))
	})

	snap, err := client.GetWeather(context.Background(), "110001")
	require.NoError(t, err)
	require.Len(t, snap.Days, 1)
	day := snap.Days[0]
	assert.Equal(t, "2026-08-30", day.Date)
	assert.Equal(t, int64(1788048000), day.DateEpoch)
	assert.InDelta(t, 31.2, day.Day.AvgTempC, 1e-9)
	assert.Equal(t, "Partly cloudy", day.Day.Condition.Text)
}

func TestGetMarket(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/market", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"market_data":[
			{"commodity":"Wheat","apmc":"Pune","state":"Maharashtra",
			 "min_price":2200,"modal_price":2400,"max_price":2550,
			 "unit":"Qtl","date":"2026-08-29"}
		]}`))
	})

	rows, err := client.GetMarket(context.Background(), "411001")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Wheat", rows[0].Commodity)
	assert.InDelta(t, 2400, rows[0].ModalPrice, 1e-9)
	assert.Equal(t, "Qtl", rows[0].Unit)
}

func TestGetLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/location/411001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"district":"Pune","state":"Maharashtra"}`))
	})

	loc, err := client.GetLocation(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, "Pune", loc.District)
	assert.Equal(t, "Maharashtra", loc.State)
}

func TestGetSchemes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schemes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"schemes":[{"scheme_name":"PM-KISAN","description":"Income support","category":"Financial Assistance"}]}`))
	})

	schemes, err := client.GetSchemes(context.Background())
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "PM-KISAN", schemes[0].Name)
	assert.Equal(t, "Financial Assistance", schemes[0].Category)
}

// =============================================================================
// ERROR NORMALIZATION TESTS
// =============================================================================

func TestErrorDetailExtraction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Could not find location for pincode 000000"}`))
	})

	_, err := client.GetLocation(context.Background(), "000000")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Could not find location for pincode 000000", apiErr.Message)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsTimeout(err))
}

func TestErrorWithoutDetailBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.GetSchemes(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "500")
	assert.False(t, IsNotFound(err))
}

func TestUnreachableService(t *testing.T) {
	// Point at a closed port.
	client := NewClient(WithBaseURL("http://127.0.0.1:1"), WithTimeout(2*time.Second))

	_, err := client.GetSchemes(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
}

func TestTimeoutClassification(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GetSchemes(ctx)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

// =============================================================================
// AGRI-SHARE TESTS
// =============================================================================

func TestListEquipment(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agri-share/equipment", r.URL.Path)
		require.Equal(t, "411001", r.URL.Query().Get("pincode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"abc123","name":"Rotavator","description":"5ft","owner_id":"u1","pincode":"411001","price_per_day":1200,"availability_status":true,"image_urls":[],"contact_name":"Ravi","contact_phone":"9800000000"}]`))
	})

	items, err := client.ListEquipment(context.Background(), "411001")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Rotavator", items[0].Name)
	assert.InDelta(t, 1200, items[0].PricePerDay, 1e-9)
}

func TestListEquipmentNoPincode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("pincode"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	items, err := client.ListEquipment(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateBookingDefaultsStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/agri-share/bookings", r.URL.Path)

		var b Booking
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		assert.Equal(t, "pending", b.Status)

		b.ID = "bk1"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(b)
	})

	created, err := client.CreateBooking(context.Background(), Booking{
		EquipmentID: "abc123",
		RenterID:    "u2",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
		TotalPrice:  2400,
	})
	require.NoError(t, err)
	assert.Equal(t, "bk1", created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestCreateEquipmentMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "Rotavator", r.FormValue("name"))
		assert.Equal(t, "1200.00", r.FormValue("price_per_day"))
		assert.Equal(t, "411001", r.FormValue("pincode"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"_id":"abc123","name":"Rotavator","availability_status":true}`))
	})

	created, err := client.CreateEquipment(context.Background(), CreateEquipmentRequest{
		Name:         "Rotavator",
		Description:  "5ft, good condition",
		PricePerDay:  1200,
		Pincode:      "411001",
		OwnerID:      "u1",
		ContactName:  "Ravi",
		ContactPhone: "9800000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", created.ID)
}
