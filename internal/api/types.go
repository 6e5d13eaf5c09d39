// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/agrisaathi/saathi-tui/internal/model"

// =============================================================================
// QUERY TYPES
// =============================================================================

// QueryRequest is the payload for POST /query.
type QueryRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Pincode  string `json:"pincode"`
}

// QueryResponse is the AI answer with its enrichment. Weather and Market are
// nil when the backend could not gather them for the query.
type QueryResponse struct {
	Response   string                 `json:"response"`
	Confidence float64                `json:"confidence"`
	Sources    []string               `json:"sources"`
	Weather    *model.WeatherSnapshot `json:"weather"`
	Market     *MarketResponse        `json:"market"`
}

// =============================================================================
// CONTEXTUAL DATA TYPES
// =============================================================================

// WeatherResponse wraps the forecast list from GET /weather.
type WeatherResponse struct {
	Forecast []model.ForecastDay `json:"forecast"`
}

// MarketResponse wraps the price rows from GET /market.
type MarketResponse struct {
	MarketData []model.MarketPrice `json:"market_data"`
}

// SchemeResponse wraps the rows from GET /schemes.
type SchemeResponse struct {
	Schemes []Scheme `json:"schemes"`
}

// Scheme is one government support program. Category is optional on the wire.
type Scheme struct {
	Name        string `json:"scheme_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// =============================================================================
// AGRI-SHARE TYPES
// =============================================================================

// Equipment is a rental listing on the equipment-sharing marketplace.
type Equipment struct {
	ID                 string   `json:"_id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	OwnerID            string   `json:"owner_id"`
	Pincode            string   `json:"pincode"`
	PricePerDay        float64  `json:"price_per_day"`
	AvailabilityStatus bool     `json:"availability_status"`
	ImageURLs          []string `json:"image_urls"`
	ContactName        string   `json:"contact_name"`
	ContactPhone       string   `json:"contact_phone"`
	ContactWhatsapp    string   `json:"contact_whatsapp,omitempty"`
}

// CreateEquipmentRequest carries the multipart form fields for a new listing.
// ImagePaths are local files uploaded alongside the fields.
type CreateEquipmentRequest struct {
	Name            string
	Description     string
	PricePerDay     float64
	Pincode         string
	OwnerID         string
	ContactName     string
	ContactPhone    string
	ContactWhatsapp string
	ImagePaths      []string
}

// Booking is a rental request against an equipment listing.
// Status is one of: pending, confirmed, completed, cancelled.
type Booking struct {
	ID          string  `json:"_id,omitempty"`
	EquipmentID string  `json:"equipment_id"`
	RenterID    string  `json:"renter_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	TotalPrice  float64 `json:"total_price"`
	Status      string  `json:"status"`
}
