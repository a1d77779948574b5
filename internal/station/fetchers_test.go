package station

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestTSFFetcherProbesBackwards(t *testing.T) {
	var mu sync.Mutex
	var requested []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requested = append(requested, r.URL.Path)
		count := len(requested)
		mu.Unlock()

		// The two newest hourly slots are not published yet.
		if count < 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	pattern := srv.URL + "/%d/%02d/noticias/%02d/not%02d.mp3"
	clock := MockClock{MockTime: time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)}

	url, err := NewTSFFetcher(pattern, clock)(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(requested) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(requested))
	}
	if url != srv.URL+requested[2] {
		t.Errorf("expected the third probe url %s, got %s", srv.URL+requested[2], url)
	}
}

func TestTSFFetcherGivesUpAfterFiveProbes(t *testing.T) {
	probes := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	pattern := srv.URL + "/%d/%02d/noticias/%02d/not%02d.mp3"
	clock := MockClock{MockTime: time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)}

	_, err := NewTSFFetcher(pattern, clock)(context.Background())
	if !errors.Is(err, ErrNoPlayableEntry) {
		t.Errorf("expected ErrNoPlayableEntry, got %v", err)
	}
	if probes != 5 {
		t.Errorf("expected exactly 5 probes, got %d", probes)
	}
}

func TestGPBFetcherFindsHeadlinesEntry(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/feed", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>GPB</title>
<item><title>Political Rewind interview</title><link>%s/interview</link></item>
<item><title>GPB 7am Headlines</title><link>%s/episode</link></item>
</channel></rss>`, srv.URL, srv.URL)
	})
	mux.HandleFunc("/episode", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<a href="https://cdn.example.com/headlines-7am.mp3">Listen</a>
</body></html>`)
	})

	url, err := NewGPBFetcher(srv.URL + "/feed")(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if url != "https://cdn.example.com/headlines-7am.mp3" {
		t.Errorf("expected the episode mp3, got %s", url)
	}
}

func TestGPBFetcherNoHeadlines(t *testing.T) {
	srv := feedServer(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>GPB</title>
<item><title>Interview only</title><link>https://example.com/x</link></item>
</channel></rss>`)

	_, err := NewGPBFetcher(srv.URL)(context.Background())
	if !errors.Is(err, ErrNoPlayableEntry) {
		t.Errorf("expected ErrNoPlayableEntry, got %v", err)
	}
}

func TestRAIFetcher(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/programmi/gr1.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"block":{"cards":[{"path_id":"/audio/gr1-latest.json"}]}}`)
	})
	mux.HandleFunc("/audio/gr1-latest.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"downloadable_audio":{"url":"https://cdn.example.com/gr1.mp3"}}`)
	})

	url, err := NewRAIFetcher(srv.URL)(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if url != "https://cdn.example.com/gr1.mp3" {
		t.Errorf("expected the downloadable audio url, got %s", url)
	}
}

func TestABCFetcherTwoHopScrape(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/radio/newsradio/news-briefings/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<div id="collection-grid3"><a href="/episode-today">Today</a><a href="/episode-old">Old</a></div>
</body></html>`)
	})
	mux.HandleFunc("/episode-today", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<a data-component="DownloadButton" href="https://cdn.example.com/briefing.mp3">Download</a>
</body></html>`)
	})

	url, err := NewABCFetcher(srv.URL)(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if url != "https://cdn.example.com/briefing.mp3" {
		t.Errorf("expected the download button href, got %s", url)
	}
}

func TestResolveDispatch(t *testing.T) {
	static := Station{Acronym: "S", Source: StaticSource{URL: "https://x/s.mp3"}}
	url, err := Resolve(context.Background(), static)
	if err != nil || url != "https://x/s.mp3" {
		t.Errorf("static resolution = (%s, %v)", url, err)
	}

	failing := Station{Acronym: "F", Source: FetcherSource{
		Fetch: func(ctx context.Context) (string, error) { return "", nil },
	}}
	if _, err := Resolve(context.Background(), failing); !errors.Is(err, ErrNoPlayableEntry) {
		t.Errorf("empty fetcher result should be ErrNoPlayableEntry, got %v", err)
	}
}
