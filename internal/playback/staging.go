package playback

import (
	"fmt"
	"os"
	"path/filepath"
)

// staging manages the single per-device stream artifact that bridges a
// remote source the player cannot consume directly. The artifact lives
// at a well-known path and is recreated for every staged session; the
// teardown-before-spawn ordering in the orchestrator guarantees only
// one fetch process ever owns it.
type staging struct {
	dir string
}

func newStaging(cacheDir string) staging {
	return staging{dir: cacheDir}
}

// Path is the well-known artifact location.
func (s staging) Path() string {
	return filepath.Join(s.dir, "stream")
}

// Recreate deletes any stale artifact from a previous session and
// creates a fresh empty one.
func (s staging) Recreate() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", s.dir, err)
	}

	path := s.Path()
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale stream artifact %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stream artifact %s: %w", path, err)
	}
	return f.Close()
}
