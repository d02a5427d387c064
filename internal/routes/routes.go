package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"crag_viewer/internal/controllers"
)

// SetupRouter wires middleware and every endpoint group. CORS is layered on
// by the caller around the whole engine.
func SetupRouter(rc *controllers.RouteController, tc *controllers.TerrainController, vc *controllers.ViewerController, staticDir string) *gin.Engine {
	r := gin.New()

	// Recovery and request logging middleware
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	RouteRoutes(r, rc)
	TerrainRoutes(r, tc)
	ViewerRoutes(r, vc, staticDir)

	return r
}
