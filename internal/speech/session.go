package speech

import "fmt"

// State is the phase of a recording session.
type State int

// Session states.
const (
	StateIdle State = iota
	StateRecording
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session tracks one recording at a time.
//
// Each Begin returns an id; Complete and Fail only apply to the current id so
// results of superseded or reset recordings are dropped. Session is not safe
// for concurrent use: drive it from a single goroutine (the UI loop) and feed
// asynchronous results back through Complete and Fail.
type Session struct {
	state      State
	id         uint64
	capture    Capture
	stopping   bool
	transcript string
	reason     error
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Recording reports whether audio capture is active.
func (s *Session) Recording() bool {
	return s.state == StateRecording && !s.stopping
}

// Pending reports whether a stopped recording is still waiting for its transcript.
func (s *Session) Pending() bool {
	return s.state == StateRecording && s.stopping
}

// Begin starts tracking capture, cancelling any recording in progress.
func (s *Session) Begin(capture Capture) uint64 {
	if s.state == StateRecording && s.capture != nil {
		s.capture.Cancel()
	}
	s.id++
	s.state = StateRecording
	s.capture = capture
	s.stopping = false
	s.transcript = ""
	s.reason = nil
	return s.id
}

// Stop asks the active capture to finish. The session stays in
// StateRecording until Complete or Fail delivers the outcome.
func (s *Session) Stop() error {
	if s.state != StateRecording {
		return ErrNotRecording
	}
	if s.stopping {
		return nil
	}
	s.stopping = true
	if err := s.capture.Stop(); err != nil {
		s.capture.Cancel()
		s.fail(fmt.Errorf("failed to stop recording: %w", err))
		return s.reason
	}
	return nil
}

// Complete records the transcript for recording id. It reports whether id was current.
func (s *Session) Complete(id uint64, transcript string) bool {
	if id != s.id || s.state != StateRecording {
		return false
	}
	s.state = StateCompleted
	s.capture = nil
	s.stopping = false
	s.transcript = transcript
	return true
}

// Fail records a recognition failure for recording id. It reports whether id was current.
func (s *Session) Fail(id uint64, err error) bool {
	if id != s.id || s.state != StateRecording {
		return false
	}
	s.fail(err)
	return true
}

// Reset cancels any recording and returns to StateIdle.
func (s *Session) Reset() {
	if s.state == StateRecording && s.capture != nil {
		s.capture.Cancel()
	}
	s.id++
	s.state = StateIdle
	s.capture = nil
	s.stopping = false
	s.transcript = ""
	s.reason = nil
}

// Transcript returns the recognized text once the session is completed.
func (s *Session) Transcript() (string, bool) {
	if s.state != StateCompleted {
		return "", false
	}
	return s.transcript, true
}

// Err returns the failure reason in StateFailed.
func (s *Session) Err() error {
	if s.state != StateFailed {
		return nil
	}
	return s.reason
}

func (s *Session) fail(err error) {
	s.state = StateFailed
	s.capture = nil
	s.stopping = false
	s.transcript = ""
	s.reason = err
}
