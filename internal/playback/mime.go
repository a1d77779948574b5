package playback

import (
	"context"
	"net/http"
	"time"
)

var headClient = &http.Client{Timeout: 10 * time.Second}

// findMime asks the origin for the content type of a media url,
// following redirects. Falls back to audio/mpeg, which is what nearly
// every news bulletin is anyway.
func findMime(ctx context.Context, url string) string {
	mime := "audio/mpeg"
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return mime
	}
	resp, err := headClient.Do(req)
	if err != nil {
		return mime
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			mime = ct
		}
	}
	return mime
}
