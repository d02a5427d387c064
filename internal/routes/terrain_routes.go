package routes

import (
	"github.com/gin-gonic/gin"

	"crag_viewer/internal/controllers"
)

func TerrainRoutes(r *gin.Engine, tc *controllers.TerrainController) {
	terrain := r.Group("/terrain")
	{
		terrain.GET("/layer.json", tc.LayerJSON)
		terrain.GET("/tiles/*filepath", tc.Tile)
	}
}
