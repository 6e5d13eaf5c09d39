// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package orchestrator coordinates the workflows between the AgriSaathi
// backend and the session store.
//
// Two workflows live here:
//
//   - ResolvePincode: validate a pincode, resolve its location, then fetch
//     weather and market data concurrently. Commits are guarded by a
//     generation counter so overlapping resolutions settle on the newest
//     one; a slow response for an abandoned pincode is discarded, never
//     merged.
//
//   - Submit: append the user's question optimistically, call the query
//     endpoint, and append either the structured AI answer or the locale's
//     degraded failure line. A pending flag is observable while the answer
//     is in flight.
//
// The orchestrator holds no durable state of its own. Validation failures
// (ErrInvalidPincode, ErrEmptyQuery) are distinct from transport errors,
// which pass through in the api package's normalized form.
package orchestrator
