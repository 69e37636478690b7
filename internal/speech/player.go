package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Player plays audio files through an external command.
type Player struct {
	command string
	slot    procSlot
}

// NewPlayer returns a Player. An empty command picks the first installed
// player among mpg123, ffplay, play, paplay and afplay.
func NewPlayer(command string) *Player {
	return &Player{command: strings.TrimSpace(command)}
}

// Play stops the current playback and starts playing path.
func (p *Player) Play(path string) error {
	args, err := p.resolve(path)
	if err != nil {
		return err
	}
	if err := p.slot.start(exec.Command(args[0], args[1:]...)); err != nil {
		return fmt.Errorf("failed to start audio player: %w", err)
	}
	return nil
}

// Stop stops the current playback.
func (p *Player) Stop() {
	p.slot.stop()
}

// Available reports whether a player command can be found.
func (p *Player) Available() error {
	_, err := p.resolve("x")
	return err
}

func (p *Player) resolve(path string) ([]string, error) {
	if p.command != "" {
		parts := strings.Fields(p.command)
		if _, err := lookPath(parts[0]); err != nil {
			return nil, unavailable(fmt.Sprintf("audio player %q not found", parts[0]))
		}
		return withFile(parts, path), nil
	}
	candidates := [][]string{
		{"mpg123", "-q", "{file}"},
		{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", "{file}"},
		{"play", "-q", "{file}"},
		{"paplay", "{file}"},
	}
	if runtime.GOOS == "darwin" {
		candidates = append([][]string{{"afplay", "{file}"}}, candidates...)
	}
	for _, c := range candidates {
		if _, err := lookPath(c[0]); err == nil {
			return withFile(c, path), nil
		}
	}
	return nil, unavailable("no audio player found; install mpg123, ffplay, sox or paplay")
}

// withFile substitutes {file} in args, or appends path when no placeholder is present.
func withFile(args []string, path string) []string {
	out := make([]string, 0, len(args)+1)
	replaced := false
	for _, a := range args {
		if strings.Contains(a, "{file}") {
			a = strings.ReplaceAll(a, "{file}", path)
			replaced = true
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, path)
	}
	return out
}
