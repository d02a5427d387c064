package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"crag_viewer/internal/codec"
	"crag_viewer/internal/models"
	"crag_viewer/internal/persist"
	"crag_viewer/internal/stats"
	"crag_viewer/internal/store"
)

// RouteController wires the route store and the persistence adapter to the
// HTTP surface. The store is owned here and handed in at construction; no
// package-level state.
type RouteController struct {
	Store *store.Store
	Log   *persist.RouteLog
}

func NewRouteController(s *store.Store, l *persist.RouteLog) *RouteController {
	return &RouteController{Store: s, Log: l}
}

// ListRoutes exports the active routes as a GeoJSON FeatureCollection.
// An optional ?grade= query narrows the export to one grade label.
func (rc *RouteController) ListRoutes(c *gin.Context) {
	grade := c.Query("grade")
	var records []models.RouteRecord
	for e := range rc.Store.All() {
		if grade != "" && e.Record.Grade != grade {
			continue
		}
		records = append(records, e.Record)
	}

	text, err := codec.EncodeAll(records)
	if err != nil {
		logrus.WithError(err).Error("ListRoutes: encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", []byte(text))
}

// CreateRoute adds one freshly drawn route to the store and appends it to
// persistent storage.
func (rc *RouteController) CreateRoute(c *gin.Context) {
	var input models.RouteRecord
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	record := input.FillDefaults()
	if !record.Drawable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A route needs at least 2 points"})
		return
	}

	// Persist first: the store has no single-record remove, so a route must
	// not reach the map until its save succeeded.
	if err := rc.Log.Append(record); err != nil {
		logrus.WithError(err).Error("CreateRoute: persist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Save failed: " + err.Error()})
		return
	}
	rc.Store.Add(record, models.BuildVisuals(record)...)
	c.JSON(http.StatusCreated, gin.H{"route": record})
}

// ImportRoutes decodes an uploaded FeatureCollection into the store.
// Malformed top-level input is a hard 400; unusable features inside a valid
// collection only lower the accepted count.
func (rc *RouteController) ImportRoutes(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read upload"})
		return
	}

	result, err := codec.DecodeAll(string(body))
	if err != nil {
		if errors.Is(err, codec.ErrFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	accepted := 0
	for _, record := range result.Records {
		if rc.Store.Add(record, models.BuildVisuals(record)...) {
			accepted++
		}
	}
	c.JSON(http.StatusOK, gin.H{"accepted": accepted, "skipped": result.Skipped})
}

// ClearRoutes empties the store. Visual handles are released through the
// store's callback; persisted routes are untouched, clearing the map is not
// deleting your saves.
func (rc *RouteController) ClearRoutes(c *gin.Context) {
	rc.Store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Routes cleared"})
}

// RouteStats returns the aggregate panel numbers for the active routes.
func (rc *RouteController) RouteStats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Compute(rc.Store.Records()))
}

// SearchRoutes finds routes by case-insensitive name substring. An empty
// query returns everything in insertion order.
func (rc *RouteController) SearchRoutes(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	matches := stats.FindByNameSubstring(rc.Store.Records(), term)
	if matches == nil {
		matches = []models.RouteRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"routes": matches})
}
