// Package speech abstracts speech synthesis and speech recognition.
//
// Output speaks text aloud; Input captures one utterance and turns it into a
// transcript. Production adapters run local processes (espeak-ng, a recorder,
// an audio player) or call the OpenAI audio API. Session tracks a single
// recording from start to transcript.
package speech

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports that a capability is missing in this environment.
	ErrUnavailable = errors.New("speech capability unavailable")
	// ErrCanceled is returned by Capture.Wait after Cancel.
	ErrCanceled = errors.New("speech capture canceled")
	// ErrNotRecording is returned when stopping a session that is not recording.
	ErrNotRecording = errors.New("not recording")
)

// Output synthesizes speech.
type Output interface {
	// Name identifies the backend.
	Name() string
	// Available returns an error wrapping ErrUnavailable when the backend cannot speak.
	Available() error
	// Speak cancels any in-flight synthesis and starts speaking text.
	Speak(ctx context.Context, text string) error
	// Stop cancels in-flight synthesis.
	Stop() error
}

// Input captures speech and recognizes it.
type Input interface {
	Name() string
	Available() error
	// Start begins capturing one utterance.
	Start(ctx context.Context) (Capture, error)
}

// Capture is a single in-progress recognition.
type Capture interface {
	// Stop ends audio capture; the transcript is then delivered by Wait.
	Stop() error
	// Cancel abandons the capture; Wait returns ErrCanceled.
	Cancel()
	// Wait blocks until exactly one transcript or an error is available.
	Wait(ctx context.Context) (string, error)
}

// Transcriber turns a recorded audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

// NoOutput is an Output that is never available.
type NoOutput struct {
	Reason string
}

// Name implements Output.
func (n NoOutput) Name() string { return "none" }

// Available implements Output.
func (n NoOutput) Available() error { return unavailable(n.Reason) }

// Speak implements Output.
func (n NoOutput) Speak(context.Context, string) error { return n.Available() }

// Stop implements Output.
func (n NoOutput) Stop() error { return nil }

// NoInput is an Input that is never available.
type NoInput struct {
	Reason string
}

// Name implements Input.
func (n NoInput) Name() string { return "none" }

// Available implements Input.
func (n NoInput) Available() error { return unavailable(n.Reason) }

// Start implements Input.
func (n NoInput) Start(context.Context) (Capture, error) { return nil, n.Available() }

func unavailable(reason string) error {
	if reason == "" {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, reason)
}
