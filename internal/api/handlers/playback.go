package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-radio/internal/models"
	"news-radio/internal/playback"
	"news-radio/internal/station"
)

// PlaybackHandler exposes the session state machine over HTTP. It is a
// thin shim: every decision lives in the orchestrator.
type PlaybackHandler struct {
	orchestrator *playback.Orchestrator
}

func NewPlaybackHandler(o *playback.Orchestrator) *PlaybackHandler {
	return &PlaybackHandler{orchestrator: o}
}

// Play handles POST /play with an optional {station, utterance} body.
// An empty body plays the default station.
func (h *PlaybackHandler) Play(c *gin.Context) {
	var req models.Request
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	err := h.orchestrator.Play(c.Request.Context(), req)
	switch {
	case err == nil:
		now, _ := h.orchestrator.NowPlaying()
		c.JSON(http.StatusOK, gin.H{"playing": now.Acronym})
	case errors.Is(err, station.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown station"})
	case errors.Is(err, playback.ErrNotNews):
		// A valid negative: the utterance was not about news.
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "not a news request"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// Stop handles POST /stop.
func (h *PlaybackHandler) Stop(c *gin.Context) {
	stopped := h.orchestrator.Stop()
	c.JSON(http.StatusOK, gin.H{"stopped": stopped})
}

// Restart handles POST /restart.
func (h *PlaybackHandler) Restart(c *gin.Context) {
	restarted := h.orchestrator.Restart(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"restarted": restarted})
}

// Status handles GET /status.
func (h *PlaybackHandler) Status(c *gin.Context) {
	if s, ok := h.orchestrator.NowPlaying(); ok {
		c.JSON(http.StatusOK, gin.H{"playing": true, "station": s.Acronym, "name": s.FullName})
		return
	}
	c.JSON(http.StatusOK, gin.H{"playing": false})
}
