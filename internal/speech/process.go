package speech

import (
	"os/exec"
	"sync"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// procSlot holds at most one running process. Starting a new one kills the previous.
type procSlot struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func (p *procSlot) start(cmd *exec.Cmd) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killLocked()
	if err := cmd.Start(); err != nil {
		return err
	}
	p.cmd = cmd
	go func() {
		if err := cmd.Wait(); err != nil {
			// Killed or failed playback; nothing to report.
			_ = err
		}
		p.mu.Lock()
		if p.cmd == cmd {
			p.cmd = nil
		}
		p.mu.Unlock()
	}()
	return nil
}

func (p *procSlot) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.killLocked()
}

func (p *procSlot) killLocked() {
	if p.cmd != nil && p.cmd.Process != nil {
		if err := p.cmd.Process.Kill(); err != nil {
			// Process already exited.
			_ = err
		}
	}
	p.cmd = nil
}
