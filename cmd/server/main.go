package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"crag_viewer/internal/config"
	"crag_viewer/internal/controllers"
	"crag_viewer/internal/logger"
	"crag_viewer/internal/middleware"
	"crag_viewer/internal/models"
	"crag_viewer/internal/persist"
	"crag_viewer/internal/routes"
	"crag_viewer/internal/store"
	"crag_viewer/internal/terrain"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the key-value database
	config.InitDB()

	kv := persist.NewGormStore(config.GetDB())
	routeLog := persist.NewRouteLog(kv)

	// The server has no renderer; released handles just get dropped.
	routeStore := store.New(nil)
	seedStore(routeStore, routeLog)

	// Resolve a terrain provider before the first page load; the route
	// layer does not depend on the outcome.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	provider := terrain.Resolve(ctx, nil, config.TerrainDir(), config.TerrainFallbackURLs())
	cancel()

	rc := controllers.NewRouteController(routeStore, routeLog)
	tc := controllers.NewTerrainController(provider, config.TerrainDir())
	vc := controllers.NewViewerController()

	// Setup Gin router
	r := routes.SetupRouter(rc, tc, vc, config.StaticDir())

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🧗 Viewer backend running at %s", config.Addr())
	log.Fatal(http.ListenAndServe(config.Addr(), handler))
}

// seedStore fills the store with persisted routes, or the built-in samples
// on a fresh install.
func seedStore(s *store.Store, l *persist.RouteLog) {
	records := l.LoadAll()
	if len(records) == 0 {
		records = models.SampleRoutes()
	}
	for _, record := range records {
		if !s.Add(record, models.BuildVisuals(record)...) {
			logrus.WithField("route", record.Name).Warn("seed: skipped undrawable route")
		}
	}
}
