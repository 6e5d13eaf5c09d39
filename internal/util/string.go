// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Rune-aware truncation preserves multi-byte characters.
// Hindi and Marathi text is multi-byte UTF-8 throughout, so byte-indexed
// slicing would corrupt messages; everything here counts runes or cells.

// TruncateWidth truncates a string to a maximum display width in terminal
// cells, accounting for double-width characters.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// DigitsOnly strips every non-ASCII-digit rune from s. Mirrors the pincode
// input filter: keystrokes that are not digits are dropped before validation.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsDevanagari reports whether s contains at least one rune in the
// Devanagari block (U+0900..U+097F). Used to pick the synthesis voice for
// Hindi text; Marathi shares the script and matches too.
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}
