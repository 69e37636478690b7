package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const espeakBinary = "espeak-ng"

// ESpeak speaks through a local espeak-ng process.
type ESpeak struct {
	voice string
	speed int
	slot  procSlot
}

// NewESpeak returns an espeak-ng backend. Empty voice defaults to en-us,
// non-positive speed to 150 words per minute.
func NewESpeak(voice string, speed int) *ESpeak {
	if voice == "" {
		voice = "en-us"
	}
	if speed <= 0 {
		speed = 150
	}
	if speed < 80 {
		speed = 80
	} else if speed > 450 {
		speed = 450
	}
	return &ESpeak{voice: voice, speed: speed}
}

// Name implements Output.
func (e *ESpeak) Name() string { return espeakBinary }

// Available implements Output.
func (e *ESpeak) Available() error {
	if _, err := lookPath(espeakBinary); err != nil {
		return unavailable("espeak-ng not found in PATH")
	}
	return nil
}

// Speak implements Output.
func (e *ESpeak) Speak(_ context.Context, text string) error {
	if err := e.Available(); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		e.slot.stop()
		return nil
	}
	cmd := exec.Command(espeakBinary, e.args(text)...)
	if err := e.slot.start(cmd); err != nil {
		return fmt.Errorf("failed to start espeak-ng: %w", err)
	}
	return nil
}

// Stop implements Output.
func (e *ESpeak) Stop() error {
	e.slot.stop()
	return nil
}

func (e *ESpeak) args(text string) []string {
	return []string{"-v", e.voice, "-s", fmt.Sprintf("%d", e.speed), "--", text}
}
