// Package playback owns the single playback session per device: the
// speech-then-stream handoff, local staging for sources the player
// cannot consume directly, supervision of the external fetch process,
// and the status events every transition emits.
package playback

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"news-radio/internal/match"
	"news-radio/internal/models"
	"news-radio/internal/station"
)

// ErrNotNews is the matcher's decline: the utterance was not about news
// at all. It is a valid negative result, not a failure.
var ErrNotNews = errors.New("utterance is not a news request")

// Speech is the external announcement collaborator.
type Speech interface {
	// Announce queues a dialog template for speaking; fire-and-forget.
	Announce(key string, params map[string]string)
	// AwaitIdle blocks until any queued announcement has finished.
	AwaitIdle()
}

// Backend is the external audio player collaborator.
type Backend interface {
	Play(uri, mime string) error
	Stop() error
	// SupportedSchemes lists the transport schemes the player consumes
	// directly; anything else gets staged locally first.
	SupportedSchemes() []string
}

// Options wires an Orchestrator.
type Options struct {
	Catalog     *station.Catalog
	Matcher     *match.Matcher
	Defaults    *match.Defaults
	Speech      Speech
	Backend     Backend
	Reporter    Reporter
	CacheDir    string
	ImageDir    string
	KillTimeout time.Duration
}

// Orchestrator runs the session state machine. All session state lives
// behind one mutex; a new play request preempts whatever is in flight.
type Orchestrator struct {
	catalog     *station.Catalog
	matcher     *match.Matcher
	defaults    *match.Defaults
	speech      Speech
	backend     Backend
	reporter    Reporter
	staging     staging
	imageDir    string
	killTimeout time.Duration

	mu          sync.Mutex
	nowPlaying  *station.Station
	lastRequest *models.Request
	fetch       *Supervised
}

func NewOrchestrator(opts Options) *Orchestrator {
	if opts.KillTimeout <= 0 {
		opts.KillTimeout = 5 * time.Second
	}
	if opts.Reporter == nil {
		opts.Reporter = LogReporter{}
	}
	return &Orchestrator{
		catalog:     opts.Catalog,
		matcher:     opts.Matcher,
		defaults:    opts.Defaults,
		speech:      opts.Speech,
		backend:     opts.Backend,
		reporter:    opts.Reporter,
		staging:     newStaging(opts.CacheDir),
		imageDir:    opts.ImageDir,
		killTimeout: opts.KillTimeout,
	}
}

// Play starts a session for the request, stopping any prior session
// first. Resolution and staging failures speak an apology and leave the
// session idle; they are returned for the caller's benefit but must not
// be treated as fatal.
func (o *Orchestrator) Play(ctx context.Context, req models.Request) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	// A new request supersedes whatever was playing.
	o.stopLocked()

	s, err := o.chooseStation(ctx, req)
	if err != nil {
		return err
	}

	sessionsStarted.Inc()
	log.Printf("🔎 Resolving %s (%s)", s.FullName, s.Acronym)

	// Speak the intro now; the announcement overlaps the network
	// resolution below, and playback waits for it to finish.
	o.speech.Announce("news", map[string]string{"from": s.FullName})

	timer := prometheus.NewTimer(resolveDuration)
	mediaURL, err := station.Resolve(ctx, s)
	timer.ObserveDuration()
	if err != nil {
		sessionFailures.WithLabelValues("resolve").Inc()
		log.Printf("❌ Could not resolve %s: %v", s.Acronym, err)
		o.apologize()
		return err
	}

	mime := findMime(ctx, mediaURL)
	playURI := mediaURL
	bulletinTitle := ""

	if !o.schemeSupported(mediaURL) {
		stagedDownloads.Inc()
		stagedURI, sniffed, err := o.stageLocked(mediaURL)
		if err != nil {
			log.Printf("❌ Staging %s for %s failed: %v", mediaURL, s.Acronym, err)
			o.apologize()
			return err
		}
		playURI = stagedURI
		if sniffed.MIME != "" {
			mime = sniffed.MIME
		}
		bulletinTitle = sniffed.Title
	}

	// Ordering guarantee: no audio until the intro has finished.
	o.speech.AwaitIdle()

	if err := o.backend.Play(playURI, mime); err != nil {
		sessionFailures.WithLabelValues("backend").Inc()
		o.teardownFetchLocked()
		log.Printf("❌ Player rejected %s: %v", playURI, err)
		o.apologize()
		return err
	}

	nowPlaying := s
	o.nowPlaying = &nowPlaying
	lastRequest := req
	o.lastRequest = &lastRequest

	track := bulletinTitle
	if track == "" {
		track = s.FullName
	}
	o.reporter.Emit(models.Status{
		Source: "news-radio",
		Artist: s.FullName,
		Track:  track,
		Image:  s.Image(o.imageDir),
		State:  models.StatePlaying,
	})
	log.Printf("▶️  Playing %s", s.FullName)
	return nil
}

// Stop ends the current session, tearing down any in-flight fetch
// process first. Returns false when nothing was playing.
func (o *Orchestrator) Stop() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	stopped := o.stopLocked()
	if !stopped {
		log.Println("ℹ️  Nothing to stop")
		o.speech.Announce("nothing.to.stop", nil)
	}
	return stopped
}

// Restart replays the last successfully started request, if any.
func (o *Orchestrator) Restart(ctx context.Context) bool {
	o.mu.Lock()
	last := o.lastRequest
	o.mu.Unlock()

	if last == nil {
		log.Println("ℹ️  Nothing to restart")
		return false
	}
	log.Println("🔁 Restarting last request")
	return o.Play(ctx, *last) == nil
}

// NowPlaying reports the station of the active session, if any.
func (o *Orchestrator) NowPlaying() (station.Station, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.nowPlaying == nil {
		return station.Station{}, false
	}
	return *o.nowPlaying, true
}

func (o *Orchestrator) chooseStation(ctx context.Context, req models.Request) (station.Station, error) {
	switch {
	case req.Station != "":
		return o.catalog.Lookup(req.Station)
	case req.Utterance != "":
		m := o.matcher.Match(ctx, req.Utterance)
		if m.Level() == match.LevelNone || m.Station == nil {
			return station.Station{}, ErrNotNews
		}
		return *m.Station, nil
	default:
		return o.defaults.Station(ctx), nil
	}
}

func (o *Orchestrator) schemeSupported(mediaURL string) bool {
	parsed, err := url.Parse(mediaURL)
	if err != nil {
		return false
	}
	for _, scheme := range o.backend.SupportedSchemes() {
		if strings.EqualFold(parsed.Scheme, scheme) {
			return true
		}
	}
	return false
}

// stageLocked recreates the stream artifact, spawns the fetch process
// into it, and sniffs the first written bytes for error-page content.
func (o *Orchestrator) stageLocked(mediaURL string) (string, sniffResult, error) {
	if err := o.staging.Recreate(); err != nil {
		// Not one of the expected playback failures: log with full
		// detail before surfacing it like any other aborted session.
		sessionFailures.WithLabelValues("staging").Inc()
		log.Printf("❌ Stream artifact unavailable (dir %s): %v", o.staging.dir, err)
		return "", sniffResult{}, err
	}

	// -f turns HTTP-level errors into a non-zero exit instead of a
	// downloaded error page.
	fetch, err := Supervise(o.killTimeout, "curl", "-f", "-L", "-s", mediaURL, "-o", o.staging.Path())
	if err != nil {
		sessionFailures.WithLabelValues("spawn").Inc()
		return "", sniffResult{}, err
	}
	o.fetch = fetch
	log.Printf("📥 Staging download started: %s", mediaURL)

	sniffed, err := o.awaitHeadAndSniff()
	if err != nil {
		sessionFailures.WithLabelValues("content").Inc()
		o.teardownFetchLocked()
		return "", sniffResult{}, err
	}
	return "file://" + o.staging.Path(), sniffed, nil
}

// awaitHeadAndSniff waits briefly for the fetch process to write the
// head of the artifact, then inspects it. A completed download is
// inspected no matter how small it is; a short error page must not
// slip under the probe size. A slow origin that has sent nothing by
// the deadline is given the benefit of the doubt.
func (o *Orchestrator) awaitHeadAndSniff() (sniffResult, error) {
	deadline := time.Now().Add(3 * time.Second)
	for {
		if info, err := os.Stat(o.staging.Path()); err == nil && info.Size() >= 512 {
			return sniffArtifact(o.staging.Path())
		}

		if exited, waitErr := o.fetch.Exited(); exited {
			if waitErr != nil {
				return sniffResult{}, fmt.Errorf("fetch process failed: %w", waitErr)
			}
			return sniffArtifact(o.staging.Path())
		}
		if time.Now().After(deadline) {
			return sniffResult{}, nil
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// stopLocked tears down the fetch process and the player, clears the
// session, and emits the empty status event. Caller holds the lock.
func (o *Orchestrator) stopLocked() bool {
	o.teardownFetchLocked()

	if o.nowPlaying == nil {
		o.lastRequest = nil
		return false
	}

	if err := o.backend.Stop(); err != nil {
		log.Printf("⚠️ Player stop failed: %v", err)
	}
	log.Printf("⏹️  Stopped %s", o.nowPlaying.FullName)
	o.nowPlaying = nil
	o.lastRequest = nil
	o.reporter.Emit(models.Stopped())
	return true
}

// teardownFetchLocked fully reaps the fetch process before returning,
// so a successor can never race it for the stream artifact.
func (o *Orchestrator) teardownFetchLocked() {
	if o.fetch == nil {
		return
	}
	o.fetch.Stop()
	o.fetch = nil
}

func (o *Orchestrator) apologize() {
	o.speech.Announce("could.not.start.the.news.feed", nil)
}
