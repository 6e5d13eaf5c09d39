// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration management for saathi-tui.
//
// Configuration is read from ~/.saathi/config.toml, then overridden by
// SAATHI_* environment variables, then validated. Missing files fall back to
// built-in defaults that point at the hosted AgriSaathi backend.
//
// # Environment Overrides
//
//   - SAATHI_BASE_URL: backend base URL
//   - SAATHI_LANG: UI locale (en, hi, mr)
//   - SAATHI_PINCODE: startup pincode
//   - SAATHI_SPEECH: enable the speech bridge (1/true)
//
// # Usage
//
//	cfg := config.Global()
//	client := api.NewClient(api.WithBaseURL(cfg.Backend.BaseURL))
package config
