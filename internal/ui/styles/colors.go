// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the saathi TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Green - Primary accent, brand color, assistant highlights
var Green = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

// GreenDeep - Darker green for backgrounds
var GreenDeep = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#14532D"}

// Sky - Weather card accents, info
var Sky = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#38BDF8"}

// Earth - Market card accents, commodity prices
var Earth = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, failed fetches
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, partial data states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for the header strip
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F4", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, card captions
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - Blue tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1D4ED8"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#E0F2FE"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#3B82F6"}

// Assistant message bubble - Muted green tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F0FDF4", Dark: "#1C3829"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#DCFCE7"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#86EFAC", Dark: "#4ADE80"}
