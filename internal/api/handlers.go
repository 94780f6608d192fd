package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"rentscope/server/config"
	"rentscope/server/internal/engine"
	"rentscope/server/internal/models"
)

type Handler struct {
	engine *engine.Engine
	logger *logrus.Logger
}

// SearchParams binds the three required query parameters of a search.
type SearchParams struct {
	State        string `form:"state" binding:"required"`
	District     string `form:"district" binding:"required"`
	PropertyType string `form:"type" binding:"required"`
}

func NewHandler(eng *engine.Engine, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		engine: eng,
		logger: logger,
	}
}

// GetFormOptions returns the property type catalog and the location tree the
// search form is built from.
func (h *Handler) GetFormOptions(c *gin.Context) {
	types, tree, err := h.engine.FormOptions()
	if err != nil {
		h.logger.WithError(err).Error("Form options requested before dataset load")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
		return
	}

	c.JSON(http.StatusOK, models.OptionsResponse{
		AllTypes:     types,
		LocationTree: tree,
	})
}

// Search runs a market query for one (state, district, type) combination.
func (h *Handler) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.WithError(err).Error("Failed to parse search parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "state, district and type are required"})
		return
	}

	result, err := h.engine.Search(engine.Query{
		State:        params.State,
		District:     params.District,
		PropertyType: params.PropertyType,
	})
	switch {
	case errors.Is(err, engine.ErrNotLoaded):
		c.JSON(http.StatusOK, gin.H{"found": false, "error": "data not loaded"})
		return
	case errors.Is(err, engine.ErrNoListings):
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	case err != nil:
		h.logger.WithError(err).Error("Search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, AssembleSearch(result))
}

// SearchGeoJSON returns the map sample of a search as a GeoJSON
// FeatureCollection for map clients that consume features directly.
func (h *Handler) SearchGeoJSON(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.logger.WithError(err).Error("Failed to parse search parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": "state, district and type are required"})
		return
	}

	result, err := h.engine.Search(engine.Query{
		State:        params.State,
		District:     params.District,
		PropertyType: params.PropertyType,
	})
	switch {
	case errors.Is(err, engine.ErrNotLoaded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data not loaded"})
		return
	case errors.Is(err, engine.ErrNoListings):
		c.JSON(http.StatusNotFound, gin.H{"error": "no listings match the query"})
		return
	case err != nil:
		h.logger.WithError(err).Error("Search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, AssembleGeoJSON(result))
}

// GetRegions lists the map viewports clients can offer as defaults.
func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": config.SupportedRegions})
}

// Health reports liveness and snapshot readiness.
func (h *Handler) Health(c *gin.Context) {
	listings := h.engine.Size()
	status := "ok"
	if listings == 0 {
		status = "loading"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   status,
		"listings": listings,
	})
}
