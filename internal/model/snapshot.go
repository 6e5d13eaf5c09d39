// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// LOCATION
// =============================================================================

// LocationDetails is the resolved place behind a pincode.
type LocationDetails struct {
	District string `json:"district"`
	State    string `json:"state"`
}

// =============================================================================
// WEATHER SNAPSHOT
// =============================================================================

// Condition describes a weather condition with its icon reference.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// DaySummary holds aggregate temperatures and the dominant condition for a
// forecast day. Field names follow the upstream weather provider.
type DaySummary struct {
	AvgTempC  float64   `json:"avgtemp_c"`
	MaxTempC  float64   `json:"maxtemp_c"`
	MinTempC  float64   `json:"mintemp_c"`
	Condition Condition `json:"condition"`
}

// ForecastDay is one day of the forecast window.
type ForecastDay struct {
	Date      string     `json:"date"`
	DateEpoch int64      `json:"date_epoch"`
	Day       DaySummary `json:"day"`
}

// WeatherSnapshot is the forecast bound to the active pincode.
type WeatherSnapshot struct {
	Location string        `json:"location"`
	Days     []ForecastDay `json:"forecast"`
}

// =============================================================================
// MARKET SNAPSHOT
// =============================================================================

// MarketPrice is one commodity row from the nearest mandi (wholesale market).
// Prices are in rupees per the stated unit.
type MarketPrice struct {
	Commodity  string  `json:"commodity"`
	APMC       string  `json:"apmc"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"min_price"`
	ModalPrice float64 `json:"modal_price"`
	MaxPrice   float64 `json:"max_price"`
	Unit       string  `json:"unit"`
	Date       string  `json:"date"`
}
