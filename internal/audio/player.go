// Package audio adapts a command-line media player into the playback
// backend the orchestrator drives.
package audio

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"news-radio/internal/playback"
)

// Player shells out to an external player process (ffplay by default)
// for each bulletin and supervises it like any other child process.
type Player struct {
	command     string
	schemes     []string
	killTimeout time.Duration

	mu   sync.Mutex
	proc *playback.Supervised
}

func NewPlayer(command string, schemes []string, killTimeout time.Duration) *Player {
	return &Player{
		command:     command,
		schemes:     schemes,
		killTimeout: killTimeout,
	}
}

// Play starts the player on the given uri, replacing any player process
// that is still running.
func (p *Player) Play(uri, mime string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.proc != nil {
		p.proc.Stop()
		p.proc = nil
	}

	// The player reads staged artifacts straight from disk.
	target := strings.TrimPrefix(uri, "file://")

	args := []string{target}
	if filepath.Base(p.command) == "ffplay" {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "error", target}
	}

	proc, err := playback.Supervise(p.killTimeout, p.command, args...)
	if err != nil {
		return fmt.Errorf("starting player: %w", err)
	}
	p.proc = proc
	log.Printf("🔊 Player started (%s, %s)", target, mime)
	return nil
}

// Stop tears down the player process, if one is running.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.proc == nil {
		return nil
	}
	p.proc.Stop()
	p.proc = nil
	return nil
}

// SupportedSchemes lists what the player consumes directly. The default
// pipeline carries no TLS, which is exactly what forces https sources
// through local staging.
func (p *Player) SupportedSchemes() []string {
	return p.schemes
}
