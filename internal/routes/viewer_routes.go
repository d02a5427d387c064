package routes

import (
	"github.com/gin-gonic/gin"

	"crag_viewer/internal/controllers"
)

func ViewerRoutes(r *gin.Engine, vc *controllers.ViewerController, staticDir string) {
	r.GET("/config/cameras", vc.CameraPresets)

	// The viewer page itself
	r.Static("/viewer", staticDir)
}
