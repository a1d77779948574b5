package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"news-radio/internal/api/handlers"
	"news-radio/internal/api/middleware"
	"news-radio/internal/config"
	"news-radio/internal/playback"
	"news-radio/internal/station"
)

type Server struct {
	cfg          *config.Config
	catalog      *station.Catalog
	orchestrator *playback.Orchestrator
	router       *gin.Engine
}

func New(cfg *config.Config, catalog *station.Catalog, orchestrator *playback.Orchestrator) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:          cfg,
		catalog:      catalog,
		orchestrator: orchestrator,
		router:       gin.Default(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	playbackHandler := handlers.NewPlaybackHandler(s.orchestrator)
	stationHandler := handlers.NewStationHandler(s.catalog)

	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "news-radio"})
	})

	v1 := s.router.Group("/api/v1")
	{
		// Public reads
		v1.GET("/stations", stationHandler.List)
		v1.GET("/status", playbackHandler.Status)

		// Anything that changes playback or settings needs a token,
		// unless no secret is configured (single-user device setups).
		protected := v1.Group("/")
		if s.cfg.Auth.Secret != "" {
			protected.Use(middleware.RequireAuth([]byte(s.cfg.Auth.Secret)))
		}
		{
			protected.POST("/play", playbackHandler.Play)
			protected.POST("/stop", playbackHandler.Stop)
			protected.POST("/restart", playbackHandler.Restart)
			protected.PUT("/settings/custom-url", stationHandler.SetCustomURL)
		}
	}
}

// Handler exposes the router for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server on the configured port
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
