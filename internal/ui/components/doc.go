// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable view pieces of the saathi TUI:
// the typing indicator shown while an answer is pending, the weather and
// mandi-price header cards, and the message renderer that draws chat
// bubbles with glamour-rendered markdown for AI answers.
package components
