// saathi TUI - A terminal chat client for the AgriSaathi farming assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agrisaathi/saathi-tui/internal/api"
	"github.com/agrisaathi/saathi-tui/internal/config"
	"github.com/agrisaathi/saathi-tui/internal/orchestrator"
	"github.com/agrisaathi/saathi-tui/internal/session"
	"github.com/agrisaathi/saathi-tui/internal/speech"
	"github.com/agrisaathi/saathi-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("saathi %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	// Bubble Tea owns stdout, so debug logging goes to a file when asked.
	logger := log.New(os.Stderr, "saathi: ", log.LstdFlags)
	if os.Getenv("SAATHI_DEBUG") != "" {
		f, err := tea.LogToFile("saathi-debug.log", "saathi")
		if err == nil {
			defer f.Close()
			logger = log.New(f, "saathi: ", log.LstdFlags)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	client := api.NewClient(
		api.WithBaseURL(cfg.Backend.BaseURL),
		api.WithTimeout(cfg.Timeout()),
	)

	store := session.NewStore(cfg.Locale())
	orch := orchestrator.New(store, client)

	var bridge speech.Bridge
	if cfg.Speech.Enabled {
		bridge = speech.Probe(logger)
	} else {
		bridge = speech.NewNoopBridge()
	}

	p := tea.NewProgram(
		chat.New(cfg, store, orch, client, bridge),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running saathi: %v\n", err)
		os.Exit(1)
	}
}
