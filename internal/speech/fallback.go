package speech

import (
	"context"
	"errors"
	"fmt"
)

// Fallback speaks with primary and falls back to secondary when primary fails.
type Fallback struct {
	primary   Output
	secondary Output
}

// NewFallback wraps two outputs.
func NewFallback(primary, secondary Output) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// Name implements Output.
func (f *Fallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", f.primary.Name(), f.secondary.Name())
}

// Available implements Output. It succeeds when either output is available.
func (f *Fallback) Available() error {
	primaryErr := f.primary.Available()
	if primaryErr == nil {
		return nil
	}
	secondaryErr := f.secondary.Available()
	if secondaryErr == nil {
		return nil
	}
	return fmt.Errorf("%w: primary=%v, fallback=%v", ErrUnavailable, primaryErr, secondaryErr)
}

// Speak implements Output.
func (f *Fallback) Speak(ctx context.Context, text string) error {
	if err := f.secondary.Stop(); err != nil {
		// Secondary may not be running.
		_ = err
	}
	primaryErr := f.primary.Speak(ctx, text)
	if primaryErr == nil {
		return nil
	}
	if errors.Is(primaryErr, context.Canceled) {
		return primaryErr
	}
	if err := f.secondary.Speak(ctx, text); err != nil {
		return fmt.Errorf("primary (%s) failed: %v; fallback (%s) failed: %w", f.primary.Name(), primaryErr, f.secondary.Name(), err)
	}
	return nil
}

// Stop implements Output.
func (f *Fallback) Stop() error {
	return errors.Join(f.primary.Stop(), f.secondary.Stop())
}
