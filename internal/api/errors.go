// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// Sentinel errors for conditions callers branch on.
var (
	// ErrNotFound indicates the resource does not exist (404), e.g. an
	// unknown pincode or a missing equipment listing.
	ErrNotFound = errors.New("resource not found")

	// ErrTimeout indicates the request did not complete in time.
	ErrTimeout = errors.New("request timed out")

	// ErrUnavailable indicates the service could not be reached at all.
	ErrUnavailable = errors.New("service unavailable")
)

// APIError is a normalized error from the AgriSaathi backend. Every non-2xx
// response and every transport failure is folded into this shape so callers
// never inspect raw HTTP responses.
type APIError struct {
	// StatusCode is the HTTP status, or 0 for transport-level failures.
	StatusCode int

	// Message is the human-readable description, taken from the response
	// body's "detail" field when present.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err represents a 404 or ErrNotFound.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsTimeout reports whether err represents a timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsUnavailable reports whether err represents an unreachable service.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
