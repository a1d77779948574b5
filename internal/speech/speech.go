// Package speech adapts a command-line TTS tool (espeak and friends)
// into the announcement collaborator. With no command configured it
// degrades to logging the dialog lines, which keeps headless test boxes
// usable.
package speech

import (
	"log"
	"sync"
	"time"

	"news-radio/internal/locale"
	"news-radio/internal/playback"
)

type Announcer struct {
	tables      *locale.Tables
	command     string
	killTimeout time.Duration

	mu      sync.Mutex
	current *playback.Supervised
}

func NewAnnouncer(tables *locale.Tables, command string, killTimeout time.Duration) *Announcer {
	return &Announcer{
		tables:      tables,
		command:     command,
		killTimeout: killTimeout,
	}
}

// Announce renders the dialog template and starts speaking it. A new
// announcement replaces one still in progress.
func (a *Announcer) Announce(key string, params map[string]string) {
	text := a.tables.Dialog(key, params)
	log.Printf("🗣️  %s", text)
	if a.command == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current != nil {
		a.current.Stop()
		a.current = nil
	}

	proc, err := playback.Supervise(a.killTimeout, a.command, text)
	if err != nil {
		log.Printf("⚠️ Speech command failed: %v", err)
		return
	}
	a.current = proc
}

// AwaitIdle blocks until the in-flight announcement has been spoken.
func (a *Announcer) AwaitIdle() {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()
	if current != nil {
		<-current.Done()
	}
}
