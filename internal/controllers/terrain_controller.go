package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"crag_viewer/internal/terrain"
)

// TerrainController serves the resolved terrain descriptor and the local
// tile files.
type TerrainController struct {
	Provider terrain.Provider
	TileDir  string
}

func NewTerrainController(p terrain.Provider, tileDir string) *TerrainController {
	return &TerrainController{Provider: p, TileDir: tileDir}
}

// LayerJSON hands the rendering engine the descriptor of whichever provider
// resolution landed on, with the tiles template rewritten to resolve from
// this endpoint's location.
func (tc *TerrainController) LayerJSON(c *gin.Context) {
	c.JSON(http.StatusOK, tc.Provider.ClientDescriptor())
}

// Tile serves one terrain tile from the local set. The generated .terrain
// files are stored gzipped, so they go out with Content-Encoding: gzip and
// an octet-stream type; browsers refuse the tiles without both headers.
func (tc *TerrainController) Tile(c *gin.Context) {
	rel := filepath.Clean(strings.TrimPrefix(c.Param("filepath"), "/"))
	if rel == "." || strings.HasPrefix(rel, "..") {
		c.Status(http.StatusNotFound)
		return
	}
	if strings.HasSuffix(rel, ".terrain") {
		c.Header("Content-Encoding", "gzip")
		c.Header("Content-Type", "application/octet-stream")
	}
	c.File(filepath.Join(tc.TileDir, rel))
}
