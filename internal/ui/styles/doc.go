// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the saathi TUI.
//
// The palette is agricultural: green for the brand and assistant accents,
// sky blue for weather, earth yellow for market prices. All colors are
// lipgloss.AdaptiveColor pairs so the UI reads well on both light and dark
// terminals, and the Theme detects the terminal's color profile via termenv
// at startup.
package styles
