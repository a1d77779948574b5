package playback

import (
	"fmt"
	"log"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// Supervised wraps an external process with deterministic teardown:
// terminate, wait, and escalate to kill if the process ignores the
// signal. Exactly one goroutine reaps the process.
type Supervised struct {
	cmd         *exec.Cmd
	killTimeout time.Duration

	done     chan struct{}
	stopOnce sync.Once
	waitErr  error
}

// Supervise starts the command and begins reaping it in the background.
func Supervise(killTimeout time.Duration, name string, args ...string) (*Supervised, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawning %s: %w", name, err)
	}

	s := &Supervised{
		cmd:         cmd,
		killTimeout: killTimeout,
		done:        make(chan struct{}),
	}
	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()
	return s, nil
}

// Done is closed once the process has exited and been reaped.
func (s *Supervised) Done() <-chan struct{} {
	return s.done
}

// Exited reports whether the process has already finished, and with
// what error if so.
func (s *Supervised) Exited() (bool, error) {
	select {
	case <-s.done:
		return true, s.waitErr
	default:
		return false, nil
	}
}

// Stop tears the process down: SIGTERM, wait up to the kill timeout,
// then SIGKILL. Always waits for the reaper, so no two supervised
// processes of the same artifact can ever overlap.
func (s *Supervised) Stop() {
	s.stopOnce.Do(func() {
		select {
		case <-s.done:
			return
		default:
		}

		if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
			log.Printf("⚠️ Could not signal %s: %v", s.cmd.Path, err)
		}

		select {
		case <-s.done:
		case <-time.After(s.killTimeout):
			log.Printf("⚠️ %s ignored SIGTERM, killing", s.cmd.Path)
			_ = s.cmd.Process.Kill()
			<-s.done
		}
	})
}
