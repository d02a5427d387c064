package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crag_viewer/internal/models"
)

// ViewerController serves viewer-side configuration.
type ViewerController struct{}

func NewViewerController() *ViewerController {
	return &ViewerController{}
}

// CameraPresets lists the saved viewpoints the viewer offers as fly-to
// buttons.
func (vc *ViewerController) CameraPresets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cameras": models.CameraPresets()})
}
