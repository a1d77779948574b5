package playback

import "github.com/prometheus/client_golang/prometheus"

// Metrics
var (
	sessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "news_playback_sessions_total", Help: "Playback sessions started"},
	)
	sessionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "news_playback_failures_total", Help: "Sessions aborted before playing"},
		[]string{"reason"},
	)
	stagedDownloads = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "news_staged_downloads_total", Help: "Sessions that needed local staging"},
	)
	resolveDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_media_resolve_duration_seconds",
			Help:    "Time to resolve a station to a media url",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(sessionsStarted, sessionFailures, stagedDownloads, resolveDuration)
}
