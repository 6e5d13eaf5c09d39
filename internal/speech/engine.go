// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package speech

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/agrisaathi/saathi-tui/internal/model"
)

// ErrAlreadyListening rejects a second recognition session while one is
// active.
var ErrAlreadyListening = errors.New("a listening session is already active")

// =============================================================================
// ENGINE BRIDGE
// =============================================================================

// engineBridge drives locally installed speech binaries. Recognition runs
// the transcriber as a child process and streams its stdout lines into the
// transcript channel; synthesis shells out per utterance. Engine failures
// are logged and swallowed: voice is a convenience layer and must never take
// the chat down with it.
type engineBridge struct {
	recognizerPath  string
	synthesizerPath string
	logger          *log.Logger

	mu          sync.Mutex
	listening   bool
	cancel      context.CancelFunc
	transcripts chan string
}

func newEngineBridge(recognizerPath, synthesizerPath string, logger *log.Logger) *engineBridge {
	return &engineBridge{
		recognizerPath:  recognizerPath,
		synthesizerPath: synthesizerPath,
		logger:          logger,
		transcripts:     make(chan string, 16),
	}
}

// Available reports true: Probe only builds an engineBridge when at least
// one engine exists.
func (b *engineBridge) Available() bool { return true }

// IsListening reports whether a recognition session is active.
func (b *engineBridge) IsListening() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listening
}

// Transcripts delivers recognized utterances.
func (b *engineBridge) Transcripts() <-chan string { return b.transcripts }

// StartListening launches the recognizer for the locale captured now.
// Returns ErrAlreadyListening if a session is active, nil otherwise; a
// recognizer that dies mid-session just stops producing transcripts.
func (b *engineBridge) StartListening(ctx context.Context, locale model.Locale) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listening {
		return ErrAlreadyListening
	}
	if b.recognizerPath == "" {
		b.logger.Printf("speech: no recognizer installed, listen request ignored")
		return nil
	}

	tag := RecognitionTag(locale)
	runCtx, cancel := context.WithCancel(ctx)

	cmd := exec.CommandContext(runCtx, b.recognizerPath, "--lang", tag.String())
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		b.logger.Printf("speech: recognizer pipe: %v", err)
		return nil
	}
	if err := cmd.Start(); err != nil {
		cancel()
		b.logger.Printf("speech: recognizer start: %v", err)
		return nil
	}

	b.listening = true
	b.cancel = cancel

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case b.transcripts <- line:
			case <-runCtx.Done():
			}
		}
		if err := cmd.Wait(); err != nil && runCtx.Err() == nil {
			b.logger.Printf("speech: recognizer exited: %v", err)
		}

		b.mu.Lock()
		b.listening = false
		b.cancel = nil
		b.mu.Unlock()
	}()

	return nil
}

// StopListening terminates the active recognizer, if any.
func (b *engineBridge) StopListening() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.listening = false
}

// Speak synthesizes one utterance. The voice follows the text's script, so
// a Hindi answer speaks in Hindi even while the UI is set to English.
func (b *engineBridge) Speak(ctx context.Context, text string) error {
	if b.synthesizerPath == "" {
		b.logger.Printf("speech: no synthesizer installed, speak request ignored")
		return nil
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	voice := synthesisVoice(SynthesisTag(text))
	cmd := exec.CommandContext(ctx, b.synthesizerPath, "-v", voice, text)
	if err := cmd.Run(); err != nil && ctx.Err() == nil {
		b.logger.Printf("speech: synthesis failed: %v", err)
	}
	return nil
}

// synthesisVoice maps a language tag to the synthesizer's voice name.
func synthesisVoice(tag language.Tag) string {
	if tag == tagHindiIN {
		return "hi"
	}
	return "en-us"
}
