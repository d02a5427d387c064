package routes

import (
	"github.com/gin-gonic/gin"

	"crag_viewer/internal/controllers"
)

func RouteRoutes(r *gin.Engine, rc *controllers.RouteController) {
	routes := r.Group("/routes")
	{
		routes.GET("", rc.ListRoutes) // GeoJSON export, ?grade= filters
		routes.POST("", rc.CreateRoute)
		routes.POST("/import", rc.ImportRoutes)
		routes.DELETE("", rc.ClearRoutes)
		routes.GET("/stats", rc.RouteStats)
		routes.GET("/search", rc.SearchRoutes)
	}
}
