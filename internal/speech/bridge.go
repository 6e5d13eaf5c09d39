// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"context"
	"log"
	"os/exec"

	"golang.org/x/text/language"

	"github.com/agrisaathi/saathi-tui/internal/model"
	"github.com/agrisaathi/saathi-tui/internal/util"
)

// =============================================================================
// BRIDGE INTERFACE
// =============================================================================

// Bridge is the voice interface of the application. Exactly one
// implementation is chosen at startup by Probe: an engine-backed bridge when
// the local speech binaries exist, or an inert one when they do not. The
// rest of the application calls the same methods either way and never checks
// capabilities beyond Available.
type Bridge interface {
	// Available reports whether real speech engines back this bridge.
	Available() bool

	// StartListening begins speech recognition in the given locale. The
	// locale is captured at call time; changing the UI language later does
	// not affect a session already in progress. Only one session may run at
	// a time.
	StartListening(ctx context.Context, locale model.Locale) error

	// StopListening ends the active recognition session, if any.
	StopListening()

	// IsListening reports whether a recognition session is active.
	IsListening() bool

	// Speak synthesizes text aloud. The voice is picked per utterance from
	// the text's script, not from the UI locale.
	Speak(ctx context.Context, text string) error

	// Transcripts delivers recognized utterances. The channel stays open
	// for the bridge's lifetime; a stopped session simply goes quiet.
	Transcripts() <-chan string
}

// =============================================================================
// LANGUAGE TAGS
// =============================================================================

var (
	tagEnglishUS = language.MustParse("en-US")
	tagHindiIN   = language.MustParse("hi-IN")
	tagMarathiIN = language.MustParse("mr-IN")
)

// RecognitionTag maps a UI locale to the recognizer's language tag.
// Unknown locales fall back to en-US.
func RecognitionTag(locale model.Locale) language.Tag {
	switch locale {
	case model.LocaleHindi:
		return tagHindiIN
	case model.LocaleMarathi:
		return tagMarathiIN
	default:
		return tagEnglishUS
	}
}

// SynthesisTag picks the voice for one utterance from its script: hi-IN for
// any text containing Devanagari, en-US otherwise. Marathi text therefore
// speaks with the Hindi voice; the scripts are indistinguishable at this
// level.
func SynthesisTag(text string) language.Tag {
	if util.ContainsDevanagari(text) {
		return tagHindiIN
	}
	return tagEnglishUS
}

// =============================================================================
// PROBE
// =============================================================================

// Engine binary names looked up on PATH.
const (
	recognizerBinary  = "vosk-transcriber"
	synthesizerBinary = "espeak-ng"
)

// Probe inspects the host for speech engines and returns the matching
// bridge. Missing binaries are not an error; the TUI simply runs without
// voice controls.
func Probe(logger *log.Logger) Bridge {
	if logger == nil {
		logger = log.Default()
	}

	recognizer, recErr := exec.LookPath(recognizerBinary)
	synthesizer, synErr := exec.LookPath(synthesizerBinary)

	if recErr != nil && synErr != nil {
		logger.Printf("speech: no engines found, voice disabled")
		return NewNoopBridge()
	}

	logger.Printf("speech: recognizer=%q synthesizer=%q", recognizer, synthesizer)
	return newEngineBridge(recognizer, synthesizer, logger)
}

// =============================================================================
// NOOP BRIDGE
// =============================================================================

// noopBridge satisfies Bridge with no behavior. Its transcript channel never
// delivers.
type noopBridge struct {
	transcripts chan string
}

// NewNoopBridge returns an inert bridge for hosts without speech engines.
func NewNoopBridge() Bridge {
	return &noopBridge{transcripts: make(chan string)}
}

func (n *noopBridge) Available() bool                                    { return false }
func (n *noopBridge) StartListening(context.Context, model.Locale) error { return nil }
func (n *noopBridge) StopListening()                                     {}
func (n *noopBridge) IsListening() bool                                  { return false }
func (n *noopBridge) Speak(context.Context, string) error                { return nil }
func (n *noopBridge) Transcripts() <-chan string                         { return n.transcripts }
