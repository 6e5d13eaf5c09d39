// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the HTTP client for the AgriSaathi backend.
//
// The client wraps every endpoint the TUI uses and normalizes all failures
// into *APIError, so the rest of the application branches on IsNotFound /
// IsTimeout / IsUnavailable instead of inspecting HTTP responses. Requests
// are rate limited to stay within the hosting tier's throttle.
//
// # Endpoints
//
// Core:
//   - PostQuery: chat question with language and pincode context
//   - GetWeather, GetMarket: pincode-scoped contextual data
//   - GetLocation: pincode to district/state resolution
//   - GetSchemes: government scheme catalog
//
// Agri-Share marketplace:
//   - CreateEquipment (multipart with image uploads), ListEquipment,
//     GetEquipment
//   - CreateBooking, ListBookings
//
// Error bodies are expected in the backend's {"detail": "..."} shape; the
// detail string becomes APIError.Message.
package api
