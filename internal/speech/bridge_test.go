// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// =============================================================================
// LANGUAGE TAG TESTS
// =============================================================================

func TestRecognitionTag(t *testing.T) {
	tests := []struct {
		locale model.Locale
		want   string
	}{
		{model.LocaleEnglish, "en-US"},
		{model.LocaleHindi, "hi-IN"},
		{model.LocaleMarathi, "mr-IN"},
		{model.Locale("xx"), "en-US"},
	}

	for _, tc := range tests {
		if got := RecognitionTag(tc.locale).String(); got != tc.want {
			t.Errorf("RecognitionTag(%q) = %q, want %q", tc.locale, got, tc.want)
		}
	}
}

func TestSynthesisTag(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english text", "The modal price is 2400 rupees.", "en-US"},
		{"hindi text", "गेहूं का भाव 2400 रुपये है।", "hi-IN"},
		{"marathi speaks hindi voice", "गव्हाचा भाव 2400 रुपये आहे.", "hi-IN"},
		{"mixed", "Price: 2400 रुपये", "hi-IN"},
		{"empty", "", "en-US"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SynthesisTag(tc.text).String(); got != tc.want {
				t.Errorf("SynthesisTag(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestSynthesisVoice(t *testing.T) {
	if got := synthesisVoice(tagHindiIN); got != "hi" {
		t.Errorf("hindi voice = %q", got)
	}
	if got := synthesisVoice(tagEnglishUS); got != "en-us" {
		t.Errorf("english voice = %q", got)
	}
}

// =============================================================================
// NOOP BRIDGE TESTS
// =============================================================================

func TestNoopBridgeInert(t *testing.T) {
	b := NewNoopBridge()

	if b.Available() {
		t.Error("noop bridge must not report available")
	}
	if err := b.StartListening(context.Background(), model.LocaleHindi); err != nil {
		t.Errorf("noop StartListening: %v", err)
	}
	if b.IsListening() {
		t.Error("noop bridge never listens")
	}
	if err := b.Speak(context.Background(), "hello"); err != nil {
		t.Errorf("noop Speak: %v", err)
	}
	b.StopListening()

	select {
	case v := <-b.Transcripts():
		t.Errorf("noop bridge delivered transcript %q", v)
	default:
	}
}

// =============================================================================
// ENGINE BRIDGE TESTS
// =============================================================================

func TestEngineBridgeDoubleStartRejected(t *testing.T) {
	b := newEngineBridge("", "", quietLogger())

	// Force the listening state as if a session were active.
	b.mu.Lock()
	b.listening = true
	b.mu.Unlock()

	err := b.StartListening(context.Background(), model.LocaleEnglish)
	if !errors.Is(err, ErrAlreadyListening) {
		t.Errorf("err = %v, want ErrAlreadyListening", err)
	}
}

func TestEngineBridgeMissingRecognizer(t *testing.T) {
	b := newEngineBridge("", "", quietLogger())

	if err := b.StartListening(context.Background(), model.LocaleEnglish); err != nil {
		t.Errorf("missing recognizer should be silent, got %v", err)
	}
	if b.IsListening() {
		t.Error("no session should start without a recognizer")
	}
}

func TestEngineBridgeMissingSynthesizer(t *testing.T) {
	b := newEngineBridge("", "", quietLogger())

	if err := b.Speak(context.Background(), "hello"); err != nil {
		t.Errorf("missing synthesizer should be silent, got %v", err)
	}
}

func TestEngineBridgeStopWithoutStart(t *testing.T) {
	b := newEngineBridge("", "", quietLogger())
	b.StopListening() // must not panic
	if b.IsListening() {
		t.Error("stopped bridge reports listening")
	}
}
