// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the saathi-tui application.
//
// This package contains common helper functions used throughout the
// application for string manipulation and numeric formatting.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: terminal-cell accurate truncation
//   - DigitsOnly: pincode input filtering
//   - ContainsDevanagari: script detection for speech synthesis
//
// Type Conversion:
//   - FloatToString, FloatToStringPrec: mandi price formatting
//
// # Usage
//
//	// Truncate long strings safely for display
//	display := util.TruncateWidth(longText, 50)
//
//	// Keep only digits from raw pincode input
//	pin := util.DigitsOnly(rawInput)
package util
