// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Default location shown before the user supplies a pincode of their own.
const DefaultPincode = "110001"

// DefaultLocation matches DefaultPincode.
func DefaultLocation() *LocationDetails {
	return &LocationDetails{District: "New Delhi", State: "Delhi"}
}

// PincodeLength is the fixed length of an Indian postal code.
const PincodeLength = 6

// ValidPincode reports whether raw is a well-formed pincode: exactly six
// ASCII digits. Transient keystrokes that fail this check are never committed
// to the session store.
func ValidPincode(raw string) bool {
	if len(raw) != PincodeLength {
		return false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return false
		}
	}
	return true
}
