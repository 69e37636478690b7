package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Recorder captures microphone audio with an external recorder process and
// hands the WAV file to a Transcriber.
type Recorder struct {
	command string
	dir     string
	tr      Transcriber

	// newCmd builds the recorder process; replaced in tests.
	newCmd func(path string) (*exec.Cmd, error)
}

// NewRecorder returns a Recorder. An empty command picks arecord, rec or
// ffmpeg; a configured command may contain a {file} placeholder. Recordings
// are written to dir (os.TempDir when empty) and removed after transcription.
func NewRecorder(command, dir string, tr Transcriber) *Recorder {
	r := &Recorder{command: strings.TrimSpace(command), dir: dir, tr: tr}
	r.newCmd = r.buildCmd
	return r
}

// Name implements Input.
func (r *Recorder) Name() string { return "recorder" }

// Available implements Input.
func (r *Recorder) Available() error {
	if r.tr == nil {
		return unavailable("no transcription backend configured")
	}
	_, err := r.resolve("x")
	return err
}

// Start implements Input.
func (r *Recorder) Start(_ context.Context) (Capture, error) {
	if r.tr == nil {
		return nil, unavailable("no transcription backend configured")
	}
	dir := r.dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create recording dir: %w", err)
	}
	path := filepath.Join(dir, "rec-"+uuid.NewString()+".wav")
	cmd, err := r.newCmd(path)
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start recorder: %w", err)
	}
	c := &recording{cmd: cmd, path: path, tr: r.tr, done: make(chan error, 1)}
	go func() {
		c.done <- cmd.Wait()
	}()
	return c, nil
}

func (r *Recorder) buildCmd(path string) (*exec.Cmd, error) {
	args, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return exec.Command(args[0], args[1:]...), nil
}

func (r *Recorder) resolve(path string) ([]string, error) {
	if r.command != "" {
		parts := strings.Fields(r.command)
		if _, err := lookPath(parts[0]); err != nil {
			return nil, unavailable(fmt.Sprintf("recorder %q not found", parts[0]))
		}
		return withFile(parts, path), nil
	}
	candidates := [][]string{
		{"arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-t", "wav", "{file}"},
		{"rec", "-q", "-c", "1", "-r", "16000", "{file}"},
	}
	if runtime.GOOS == "darwin" {
		candidates = append(candidates, []string{"ffmpeg", "-loglevel", "quiet", "-f", "avfoundation", "-i", ":0", "-ac", "1", "-ar", "16000", "-y", "{file}"})
	} else {
		candidates = append(candidates, []string{"ffmpeg", "-loglevel", "quiet", "-f", "pulse", "-i", "default", "-ac", "1", "-ar", "16000", "-y", "{file}"})
	}
	for _, c := range candidates {
		if _, err := lookPath(c[0]); err == nil {
			return withFile(c, path), nil
		}
	}
	return nil, unavailable("no recorder found; install alsa-utils (arecord), sox (rec) or ffmpeg")
}

type recording struct {
	cmd  *exec.Cmd
	path string
	tr   Transcriber
	done chan error

	mu       sync.Mutex
	stopped  bool
	canceled bool
}

// Stop interrupts the recorder so it finalizes the WAV file.
func (c *recording) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.canceled {
		return nil
	}
	c.stopped = true
	if err := c.cmd.Process.Signal(os.Interrupt); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		if kerr := c.cmd.Process.Kill(); kerr != nil && !errors.Is(kerr, os.ErrProcessDone) {
			return kerr
		}
	}
	return nil
}

// Cancel kills the recorder and discards the audio.
func (c *recording) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.canceled {
		return
	}
	c.canceled = true
	if err := c.cmd.Process.Kill(); err != nil {
		// Recorder already exited.
		_ = err
	}
}

// Wait waits for the recorder to exit and transcribes the file.
func (c *recording) Wait(ctx context.Context) (string, error) {
	defer func() {
		if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
			// Best-effort cleanup of the temporary recording.
			_ = err
		}
	}()
	var exitErr error
	select {
	case exitErr = <-c.done:
	case <-ctx.Done():
		c.Cancel()
		<-c.done
		return "", ctx.Err()
	}

	c.mu.Lock()
	canceled, stopped := c.canceled, c.stopped
	c.mu.Unlock()
	if canceled {
		return "", ErrCanceled
	}
	if exitErr != nil && !stopped {
		return "", fmt.Errorf("recorder exited: %w", exitErr)
	}
	info, err := os.Stat(c.path)
	if err != nil || info.Size() == 0 {
		return "", fmt.Errorf("no audio was recorded")
	}
	return c.tr.Transcribe(ctx, c.path)
}
