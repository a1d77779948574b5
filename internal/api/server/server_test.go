package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"news-radio/internal/config"
	"news-radio/internal/locale"
	"news-radio/internal/match"
	"news-radio/internal/playback"
	"news-radio/internal/station"
)

type nopSpeech struct{}

func (nopSpeech) Announce(key string, params map[string]string) {}
func (nopSpeech) AwaitIdle()                                    {}

type nopBackend struct{}

func (nopBackend) Play(uri, mime string) error { return nil }
func (nopBackend) Stop() error                 { return nil }
func (nopBackend) SupportedSchemes() []string  { return []string{"http", "https", "file"} }

func newTestServer(t *testing.T, secret string) *Server {
	t.Helper()

	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
	}))
	t.Cleanup(media.Close)

	catalog := station.NewCatalog(station.Station{
		Acronym: "TST", FullName: "Test News",
		Source: station.StaticSource{URL: media.URL + "/b.mp3"},
	})
	tables := locale.Default()
	defaults := &match.Defaults{Catalog: catalog, Tables: tables, Selected: "TST"}

	orch := playback.NewOrchestrator(playback.Options{
		Catalog:  catalog,
		Matcher:  match.NewMatcher(catalog, tables, defaults),
		Defaults: defaults,
		Speech:   nopSpeech{},
		Backend:  nopBackend{},
		CacheDir: t.TempDir(),
		ImageDir: t.TempDir(),
	})

	cfg := &config.Config{}
	cfg.Auth.Secret = secret
	return New(cfg, catalog, orch)
}

func do(t *testing.T, s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "tester"})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")
	w := do(t, s, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health = %d, want 200", w.Code)
	}
}

func TestStationListIsPublic(t *testing.T) {
	s := newTestServer(t, "sekrit")
	w := do(t, s, http.MethodGet, "/api/v1/stations", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stations = %d, want 200", w.Code)
	}

	var body struct {
		Stations []struct {
			Acronym string `json:"acronym"`
		} `json:"stations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Stations) != 1 || body.Stations[0].Acronym != "TST" {
		t.Errorf("station list = %+v", body.Stations)
	}
}

func TestPlayRequiresTokenWhenSecretSet(t *testing.T) {
	s := newTestServer(t, "sekrit")

	if w := do(t, s, http.MethodPost, "/api/v1/play", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("play without token = %d, want 401", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/api/v1/play", "", map[string]string{
		"Authorization": "Bearer not-a-token",
	}); w.Code != http.StatusUnauthorized {
		t.Errorf("play with garbage token = %d, want 401", w.Code)
	}

	token := signToken(t, "sekrit")
	if w := do(t, s, http.MethodPost, "/api/v1/play", "", map[string]string{
		"Authorization": "Bearer " + token,
	}); w.Code != http.StatusOK {
		t.Errorf("play with bearer token = %d: %s", w.Code, w.Body.String())
	}

	// The query-parameter form serves clients that cannot set headers.
	if w := do(t, s, http.MethodPost, "/api/v1/play?token="+token, "", nil); w.Code != http.StatusOK {
		t.Errorf("play with query token = %d: %s", w.Code, w.Body.String())
	}
}

func TestPlayWithoutSecretIsOpen(t *testing.T) {
	s := newTestServer(t, "")

	w := do(t, s, http.MethodPost, "/api/v1/play", `{"station":"TST"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("play = %d: %s", w.Code, w.Body.String())
	}

	w = do(t, s, http.MethodGet, "/api/v1/status", "", nil)
	var status struct {
		Playing bool   `json:"playing"`
		Station string `json:"station"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatal(err)
	}
	if !status.Playing || status.Station != "TST" {
		t.Errorf("status = %+v, want playing TST", status)
	}
}

func TestPlayUnknownStationIs404(t *testing.T) {
	s := newTestServer(t, "")
	w := do(t, s, http.MethodPost, "/api/v1/play", `{"station":"NOSUCH"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown station = %d, want 404", w.Code)
	}
}

func TestPlayNonNewsUtteranceIs422(t *testing.T) {
	s := newTestServer(t, "")
	w := do(t, s, http.MethodPost, "/api/v1/play", `{"utterance":"play some jazz"}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("non-news utterance = %d, want 422", w.Code)
	}
}

func TestStopAndRestart(t *testing.T) {
	s := newTestServer(t, "")

	if w := do(t, s, http.MethodPost, "/api/v1/play", `{"station":"TST"}`, nil); w.Code != http.StatusOK {
		t.Fatalf("play = %d", w.Code)
	}
	if w := do(t, s, http.MethodPost, "/api/v1/restart", "", nil); !strings.Contains(w.Body.String(), `"restarted":true`) {
		t.Errorf("restart = %s", w.Body.String())
	}
	if w := do(t, s, http.MethodPost, "/api/v1/stop", "", nil); !strings.Contains(w.Body.String(), `"stopped":true`) {
		t.Errorf("stop = %s", w.Body.String())
	}
	// Stop cleared the session, so both become no-ops.
	if w := do(t, s, http.MethodPost, "/api/v1/stop", "", nil); !strings.Contains(w.Body.String(), `"stopped":false`) {
		t.Errorf("second stop = %s", w.Body.String())
	}
	if w := do(t, s, http.MethodPost, "/api/v1/restart", "", nil); !strings.Contains(w.Body.String(), `"restarted":false`) {
		t.Errorf("restart after stop = %s", w.Body.String())
	}
}
