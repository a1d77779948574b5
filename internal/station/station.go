// Package station defines the news stations the daemon can play and how
// each one turns into a concrete media URL at request time.
package station

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrNotFound means the catalog has no station under that acronym.
	ErrNotFound = errors.New("station not found")
	// ErrNoPlayableEntry means a feed or fetcher yielded nothing usable.
	ErrNoPlayableEntry = errors.New("no playable entry")
)

// httpClient is shared by the feed resolver and all fetchers. Resolution
// is allowed to block on the network, but never forever.
var httpClient = &http.Client{Timeout: 20 * time.Second}

// Station is one news source. Immutable after registration; the single
// "custom" station is replaced wholesale, never mutated.
type Station struct {
	Acronym   string
	FullName  string
	ImageFile string // logo file name inside the image dir, may be empty
	Source    MediaSource
}

// Image returns a file:// reference to the station logo, falling back to
// the generic image when the station has none or the file is missing.
func (s Station) Image(imageDir string) string {
	if s.ImageFile != "" {
		path := filepath.Join(imageDir, s.ImageFile)
		if _, err := os.Stat(path); err == nil {
			return "file://" + path
		}
	}
	return "file://" + filepath.Join(imageDir, "generic.png")
}

// MediaSource is the closed set of strategies for producing a playable
// media URL. Dispatch happens in Resolve; there is deliberately no way
// to add a fourth variant from outside the package.
type MediaSource interface {
	mediaSource()
}

// StaticSource wraps a literal stream or file URL.
type StaticSource struct {
	URL string
}

// FetcherSource wraps bespoke retrieval logic (scraping, time-windowed
// URL probing). Fetch must be idempotent and free of side effects beyond
// its own network calls.
type FetcherSource struct {
	Fetch func(ctx context.Context) (string, error)
}

// FeedSource wraps an RSS or Atom feed whose newest entry carries the
// current bulletin.
type FeedSource struct {
	URL string
}

func (StaticSource) mediaSource()  {}
func (FetcherSource) mediaSource() {}
func (FeedSource) mediaSource()    {}

// Resolve produces the current media URL for a station. It may block on
// network I/O for fetcher and feed stations; callers on a latency budget
// must wrap it with a context deadline.
func Resolve(ctx context.Context, s Station) (string, error) {
	switch src := s.Source.(type) {
	case StaticSource:
		return src.URL, nil
	case FetcherSource:
		url, err := src.Fetch(ctx)
		if err != nil {
			return "", fmt.Errorf("fetcher for %s: %w", s.Acronym, err)
		}
		if url == "" {
			return "", fmt.Errorf("fetcher for %s: %w", s.Acronym, ErrNoPlayableEntry)
		}
		return url, nil
	case FeedSource:
		return resolveFeed(ctx, src.URL)
	default:
		return "", fmt.Errorf("station %s has no media source", s.Acronym)
	}
}
