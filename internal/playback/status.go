package playback

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"news-radio/internal/models"
)

// Reporter receives one status event per play/stop transition. Pure
// side-effect sink; implementations must not block playback.
type Reporter interface {
	Emit(models.Status)
}

// LogReporter writes status transitions to the daemon log.
type LogReporter struct{}

func (LogReporter) Emit(s models.Status) {
	if s.Track == "" && s.Artist == "" {
		log.Println("⏹️  Status: stopped")
		return
	}
	log.Printf("▶️  Status: %s - %s", s.Artist, s.Track)
}

// FileReporter publishes the current status as now_playing.json in the
// cache dir for anything watching the device (GUI, home dashboards).
type FileReporter struct {
	Dir string
}

func (f FileReporter) Emit(s models.Status) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	path := filepath.Join(f.Dir, "now_playing.json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Printf("⚠️ Could not write %s: %v", path, err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Printf("⚠️ Could not publish %s: %v", path, err)
	}
}

// MultiReporter fans a status event out to several sinks.
type MultiReporter []Reporter

func (m MultiReporter) Emit(s models.Status) {
	for _, r := range m {
		r.Emit(s)
	}
}
