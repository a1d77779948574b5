package audio

import (
	"testing"
	"time"
)

func TestPlayerLifecycle(t *testing.T) {
	p := NewPlayer("sleep", []string{"http", "file"}, time.Second)

	if err := p.Play("file:///tmp/does-not-matter/60", "audio/mpeg"); err != nil {
		t.Fatalf("play failed: %v", err)
	}
	// A second Play replaces the first process rather than stacking.
	if err := p.Play("file:///tmp/does-not-matter/60", "audio/mpeg"); err != nil {
		t.Fatalf("second play failed: %v", err)
	}

	if err := p.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	// Stop with no process is a no-op.
	if err := p.Stop(); err != nil {
		t.Fatalf("idle stop failed: %v", err)
	}
}

func TestPlayerUnknownCommand(t *testing.T) {
	p := NewPlayer("definitely-not-a-player-xyzzqj", nil, time.Second)
	if err := p.Play("http://example.com/a.mp3", "audio/mpeg"); err == nil {
		t.Error("expected spawn error")
	}
}

func TestSupportedSchemes(t *testing.T) {
	p := NewPlayer("ffplay", []string{"http", "file"}, time.Second)
	got := p.SupportedSchemes()
	if len(got) != 2 || got[0] != "http" || got[1] != "file" {
		t.Errorf("SupportedSchemes = %v", got)
	}
}
