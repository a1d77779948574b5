package station

import (
	"context"
	"log"
	"strings"
	"sync"
)

// CustomAcronym is the key under which the user-configured station lives.
const CustomAcronym = "custom"

// Catalog is the in-memory station registry. Built-in stations never
// change after construction; only the custom slot is ever replaced, and
// that replacement is atomic under the lock.
type Catalog struct {
	mu       sync.RWMutex
	stations map[string]Station
}

// NewCatalog builds a registry from the given stations.
func NewCatalog(stations ...Station) *Catalog {
	c := &Catalog{stations: make(map[string]Station, len(stations))}
	for _, s := range stations {
		c.stations[strings.ToLower(s.Acronym)] = s
	}
	return c
}

// Lookup finds a station by acronym, case-insensitively.
func (c *Catalog) Lookup(acronym string) (Station, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.stations[strings.ToLower(acronym)]
	if !ok {
		return Station{}, ErrNotFound
	}
	return s, nil
}

// All returns every registered station. Order is not significant.
func (c *Catalog) All() []Station {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Station, 0, len(c.stations))
	for _, s := range c.stations {
		out = append(out, s)
	}
	return out
}

// SetCustom replaces the custom station with one built from the given
// url. The url is classified by attempting a feed parse: at least one
// entry makes it a feed station, anything else is treated as a direct
// stream url. Classification fails open: a bad url is still attempted
// at playback time rather than rejected here.
func (c *Catalog) SetCustom(ctx context.Context, mediaURL string) Station {
	var source MediaSource = StaticSource{URL: mediaURL}
	if looksLikeFeed(ctx, mediaURL) {
		source = FeedSource{URL: mediaURL}
		log.Printf("📡 Custom url classified as feed: %s", mediaURL)
	} else {
		log.Printf("📡 Custom url treated as direct stream: %s", mediaURL)
	}

	s := Station{
		Acronym:  CustomAcronym,
		FullName: "Your custom station",
		Source:   source,
	}

	c.mu.Lock()
	c.stations[CustomAcronym] = s
	c.mu.Unlock()
	return s
}
