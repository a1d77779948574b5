package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-radio/internal/station"
)

// StationHandler serves the catalog and the custom-station slot.
type StationHandler struct {
	catalog *station.Catalog
}

func NewStationHandler(catalog *station.Catalog) *StationHandler {
	return &StationHandler{catalog: catalog}
}

// List handles GET /stations.
func (h *StationHandler) List(c *gin.Context) {
	type entry struct {
		Acronym string `json:"acronym"`
		Name    string `json:"name"`
	}
	var out []entry
	for _, s := range h.catalog.All() {
		out = append(out, entry{Acronym: s.Acronym, Name: s.FullName})
	}
	c.JSON(http.StatusOK, gin.H{"stations": out})
}

// SetCustomURL handles PUT /settings/custom-url. The url is classified
// by attempting a feed parse; a url that fails classification is still
// accepted as a direct stream.
func (h *StationHandler) SetCustomURL(c *gin.Context) {
	var body struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	custom := h.catalog.SetCustom(c.Request.Context(), body.URL)
	kind := "stream"
	if _, ok := custom.Source.(station.FeedSource); ok {
		kind = "feed"
	}
	c.JSON(http.StatusOK, gin.H{"station": custom.Acronym, "kind": kind})
}
