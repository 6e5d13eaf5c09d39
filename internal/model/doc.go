// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the core data structures for saathi-tui.
//
// This package contains the plain types shared by the session store, the
// orchestrator, the API client and the UI. It has no dependencies on any of
// those layers.
//
// # Key Types
//
// Conversation:
//   - Thread: an append-only conversation with greeting seeding
//   - Message: a chat entry, optionally carrying answer enrichment
//   - Sender: user or ai authorship
//   - Locale: supported UI languages (en, hi, mr) and their fixed strings
//
// Location-bound data:
//   - LocationDetails: district and state resolved from a pincode
//   - WeatherSnapshot, ForecastDay, DaySummary, Condition: forecast data
//   - MarketPrice: one commodity row from the nearest mandi
//
// Validation:
//   - ValidPincode: six ASCII digits, nothing else
//   - DefaultPincode, DefaultLocation: the pre-onboarding defaults
//
// JSON tags on the snapshot types match the backend wire format and must not
// be changed independently of the service.
package model
