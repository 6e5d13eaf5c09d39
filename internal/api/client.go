// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultBaseURL is the hosted AgriSaathi backend.
	DefaultBaseURL = "https://agrisaathi.onrender.com"

	// DefaultTimeout bounds every request. The query endpoint runs an AI
	// pipeline, so this is generous.
	DefaultTimeout = 60 * time.Second

	// Requests per second allowed toward the backend. The free hosting tier
	// throttles aggressively; staying under it avoids 429s.
	requestsPerSecond = 5
	burstSize         = 10
)

// =============================================================================
// CLIENT TYPE
// =============================================================================

// Client talks to the AgriSaathi backend. All methods take a context, return
// decoded payloads, and normalize every failure into *APIError so callers
// never touch raw HTTP.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the backend base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(url)
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// NewClient creates a client for the AgriSaathi backend.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// =============================================================================
// CORE OPERATIONS
// =============================================================================

// PostQuery sends a chat question with its language and pincode context and
// returns the AI answer.
func (c *Client) PostQuery(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	var out QueryResponse
	resp, err := c.request(ctx).SetBody(req).SetResult(&out).Post("/query")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWeather fetches the forecast for a pincode.
func (c *Client) GetWeather(ctx context.Context, pincode string) (*model.WeatherSnapshot, error) {
	var out WeatherResponse
	resp, err := c.request(ctx).
		SetQueryParam("pincode", pincode).
		SetResult(&out).
		Get("/weather")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &model.WeatherSnapshot{Days: out.Forecast}, nil
}

// GetMarket fetches mandi price rows for the state behind a pincode.
func (c *Client) GetMarket(ctx context.Context, pincode string) ([]model.MarketPrice, error) {
	var out MarketResponse
	resp, err := c.request(ctx).
		SetQueryParam("pincode", pincode).
		SetResult(&out).
		Get("/market")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out.MarketData, nil
}

// GetSchemes fetches the government scheme catalog.
func (c *Client) GetSchemes(ctx context.Context) ([]Scheme, error) {
	var out SchemeResponse
	resp, err := c.request(ctx).SetResult(&out).Get("/schemes")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out.Schemes, nil
}

// GetLocation resolves a pincode to its district and state. A 404 means the
// pincode does not exist; IsNotFound distinguishes it from transport trouble.
func (c *Client) GetLocation(ctx context.Context, pincode string) (*model.LocationDetails, error) {
	var out model.LocationDetails
	resp, err := c.request(ctx).
		SetResult(&out).
		Get("/location/" + pincode)
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// request builds a rate-limited request bound to ctx. If the context expires
// while queued at the limiter, the request itself fails fast with the same
// context error, so the limiter result is not checked separately.
func (c *Client) request(ctx context.Context) *resty.Request {
	_ = c.limiter.Wait(ctx)
	return c.http.R().SetContext(ctx)
}

// check folds a resty response and transport error into the normalized error
// shape. nil means the call succeeded with a 2xx status.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return normalizeTransportError(err)
	}
	if resp.IsSuccess() {
		return nil
	}

	msg := extractDetail(resp.Body())
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", resp.StatusCode())
	}
	apiErr := &APIError{StatusCode: resp.StatusCode(), Message: msg}
	if resp.StatusCode() == 404 {
		apiErr.Cause = ErrNotFound
	}
	return apiErr
}

// normalizeTransportError maps connection and timeout failures onto the
// sentinel errors.
func normalizeTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{Message: "request timed out", Cause: ErrTimeout}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &APIError{Message: "request timed out", Cause: ErrTimeout}
	case errors.Is(err, context.Canceled):
		return &APIError{Message: "request canceled", Cause: err}
	default:
		return &APIError{Message: err.Error(), Cause: ErrUnavailable}
	}
}

// extractDetail pulls the "detail" field out of an error body. FastAPI-style
// backends put the human-readable reason there.
func extractDetail(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
