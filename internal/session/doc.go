// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the in-memory session state for saathi-tui.
//
// The Store is the single source of truth: every chat thread, the active
// thread pointer, and the pincode-bound contextual data (location, weather,
// market prices). The UI and the orchestrator both read and write through
// it; nothing else owns session state.
//
// # Concurrency
//
// All Store methods are safe for concurrent use. Read accessors return
// copies so callers never observe a mutation in flight. Thread append and
// active-pointer updates each happen under a single lock acquisition, so a
// reader sees either the state before an operation or after it, never a
// torn middle.
//
// # Lifetime
//
// State lives for the process only. There is no persistence; a restart
// begins a fresh session with one welcome thread and the default location.
package session
