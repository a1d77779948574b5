package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"news-radio/internal/api/server"
	"news-radio/internal/audio"
	"news-radio/internal/config"
	"news-radio/internal/locale"
	"news-radio/internal/match"
	"news-radio/internal/models"
	"news-radio/internal/playback"
	"news-radio/internal/speech"
	"news-radio/internal/station"
)

func main() {
	// 1. Parse Flags
	// Flags override config.yaml values for one-shot use from a shell.
	stationFlag := flag.String("station", "", "Play this station acronym and exit")
	utteranceFlag := flag.String("utterance", "", "Match this phrase, play the result and exit")
	imageDir := flag.String("images", "./images", "Directory with station logos")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("🚀 Starting News Radio daemon...")

	// 2. Load Config + Locale tables
	cfg := config.Load()
	tables, err := locale.Load(cfg.Locale.Dir)
	if err != nil {
		log.Fatalf("❌ Could not load locale tables: %v", err)
	}

	// 3. Build the catalog
	catalog := station.NewCatalog(station.Builtin()...)
	if cfg.Station.CustomURL != "" {
		catalog.SetCustom(context.Background(), cfg.Station.CustomURL)
	}

	// 4. Matcher + default station chain
	defaults := &match.Defaults{
		Catalog:     catalog,
		Tables:      tables,
		Selected:    cfg.Station.Selected,
		CustomURL:   cfg.Station.CustomURL,
		CountryCode: cfg.Device.CountryCode,
		Area:        cfg.Device.Area,
	}
	matcher := match.NewMatcher(catalog, tables, defaults)

	// 5. Collaborators + Orchestrator
	killTimeout := time.Duration(cfg.Playback.KillTimeoutSeconds) * time.Second
	announcer := speech.NewAnnouncer(tables, cfg.Playback.SpeechCommand, killTimeout)
	player := audio.NewPlayer(cfg.Playback.PlayerCommand, cfg.Playback.Schemes, killTimeout)

	playback.RegisterMetrics()
	orchestrator := playback.NewOrchestrator(playback.Options{
		Catalog:  catalog,
		Matcher:  matcher,
		Defaults: defaults,
		Speech:   announcer,
		Backend:  player,
		Reporter: playback.MultiReporter{
			playback.LogReporter{},
			playback.FileReporter{Dir: cfg.Server.CacheDir},
		},
		CacheDir:    cfg.Server.CacheDir,
		ImageDir:    *imageDir,
		KillTimeout: killTimeout,
	})

	// 6. One-shot mode for shell use
	if *stationFlag != "" || *utteranceFlag != "" {
		req := models.Request{Station: *stationFlag, Utterance: *utteranceFlag}
		if err := orchestrator.Play(context.Background(), req); err != nil {
			log.Fatalf("❌ Playback failed: %v", err)
		}
		select {} // keep playing until killed
	}

	// 7. Metrics
	go func() {
		http.Handle("/_metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 8. Control API
	srv := server.New(cfg, catalog, orchestrator)
	log.Printf("🌍 Control API on %s", cfg.Server.APIPort)
	if err := srv.Start(cfg.Server.APIPort); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
