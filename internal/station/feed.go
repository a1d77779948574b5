package station

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

func newFeedParser() *gofeed.Parser {
	p := gofeed.NewParser()
	p.Client = httpClient
	return p
}

// resolveFeed parses the feed and picks the audio link of the newest
// entry. Typed audio enclosures win; with no typed audio link the first
// link of the entry is used as-is.
func resolveFeed(ctx context.Context, feedURL string) (string, error) {
	feed, err := newFeedParser().ParseURLWithContext(strings.TrimSpace(feedURL), ctx)
	if err != nil {
		return "", fmt.Errorf("parsing feed %s: %w", feedURL, err)
	}
	if len(feed.Items) == 0 {
		return "", fmt.Errorf("feed %s is empty: %w", feedURL, ErrNoPlayableEntry)
	}

	entry := feed.Items[0]
	mediaURL := ""
	for _, enc := range entry.Enclosures {
		if enc != nil && strings.Contains(enc.Type, "audio") {
			mediaURL = enc.URL
			break
		}
	}
	if mediaURL == "" {
		// Fall back to the first link of the entry regardless of type.
		if len(entry.Links) > 0 {
			mediaURL = entry.Links[0]
		} else {
			mediaURL = entry.Link
		}
	}
	if mediaURL == "" {
		return "", fmt.Errorf("feed %s entry has no links: %w", feedURL, ErrNoPlayableEntry)
	}

	// NPR serves the same audio without its session-bound query params,
	// and the signed variants expire. Strip them.
	if strings.Contains(feedURL, "npr.org") {
		mediaURL = stripQuery(mediaURL)
	}
	return mediaURL, nil
}

func stripQuery(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}

// looksLikeFeed reports whether the url parses as a feed with at least
// one entry. Used to classify custom station urls.
func looksLikeFeed(ctx context.Context, url string) bool {
	feed, err := newFeedParser().ParseURLWithContext(strings.TrimSpace(url), ctx)
	return err == nil && len(feed.Items) > 0
}
