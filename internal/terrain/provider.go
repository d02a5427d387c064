// Package terrain resolves which terrain tile provider the viewer uses.
//
// Resolution is best-effort with a fallback chain: the locally generated
// LiDAR tile set, then any configured remote providers, then the flat
// default. The route layer never waits on it; routes draw against whatever
// provider is ready.
package terrain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Descriptor is the subset of a Cesium layer.json the viewer needs.
type Descriptor struct {
	TileJSON    string    `json:"tilejson"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Version     string    `json:"version"`
	Format      string    `json:"format"`
	Tiles       []string  `json:"tiles"`
	MinZoom     int       `json:"minzoom"`
	MaxZoom     int       `json:"maxzoom"`
	Bounds      []float64 `json:"bounds,omitempty"`
	Attribution string    `json:"attribution,omitempty"`
}

// Provider is a resolved terrain source: where tiles come from and the
// descriptor handed to the rendering engine.
type Provider struct {
	Name    string
	BaseURL string // empty for the local tile set and the default
	Layer   Descriptor
	Default bool // true when every candidate failed
}

// ClientDescriptor returns the descriptor as the viewer must see it when it
// loads layer.json from this server. A Cesium client resolves the tiles
// template against the layer.json location, so local tiles (served under
// tiles/) get that prefix and remote tiles become absolute URLs; the raw
// descriptor's relative template would point one level too high.
func (p Provider) ClientDescriptor() Descriptor {
	desc := p.Layer
	if p.Default {
		return desc
	}
	rewritten := make([]string, len(desc.Tiles))
	for i, tmpl := range desc.Tiles {
		switch {
		case strings.Contains(tmpl, "://"):
			rewritten[i] = tmpl
		case p.BaseURL != "":
			rewritten[i] = strings.TrimSuffix(p.BaseURL, "/") + "/" + tmpl
		default:
			rewritten[i] = "tiles/" + tmpl
		}
	}
	desc.Tiles = rewritten
	return desc
}

// DefaultDescriptor is the flat-ellipsoid provider of last resort. The
// viewer still works on it; routes just float over smooth terrain.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		TileJSON: "2.1.0",
		Name:     "default",
		Version:  "1.0.0",
		Format:   "heightmap-1.0",
		Tiles:    []string{"{z}/{x}/{y}.terrain"},
		MinZoom:  0,
		MaxZoom:  0,
	}
}

// Resolve picks a provider. localDir is checked first for a generated tile
// set (a readable layer.json); then each candidate URL is fetched until one
// answers with a parseable descriptor; otherwise the default applies.
// Network candidates share the context, so a page-load deadline bounds the
// whole chain.
func Resolve(ctx context.Context, client *http.Client, localDir string, candidates []string) Provider {
	if desc, err := readLocal(localDir); err == nil {
		logrus.WithField("dir", localDir).Info("terrain: using local tile set")
		return Provider{Name: "local", Layer: desc}
	}

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	for _, base := range candidates {
		desc, err := fetchDescriptor(ctx, client, base)
		if err != nil {
			logrus.WithError(err).WithField("url", base).
				Warn("terrain: provider unavailable, trying next")
			continue
		}
		logrus.WithField("url", base).Info("terrain: using remote provider")
		return Provider{Name: desc.Name, BaseURL: base, Layer: desc}
	}

	logrus.Info("terrain: no provider available, falling back to default ellipsoid")
	return Provider{Name: "default", Layer: DefaultDescriptor(), Default: true}
}

func readLocal(dir string) (Descriptor, error) {
	var desc Descriptor
	b, err := os.ReadFile(filepath.Join(dir, "layer.json"))
	if err != nil {
		return desc, err
	}
	if err := json.Unmarshal(b, &desc); err != nil {
		return desc, err
	}
	return desc, nil
}

func fetchDescriptor(ctx context.Context, client *http.Client, base string) (Descriptor, error) {
	var desc Descriptor
	url := strings.TrimSuffix(base, "/") + "/layer.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return desc, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return desc, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return desc, &StatusError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(&desc); err != nil {
		return desc, err
	}
	return desc, nil
}

// StatusError reports a non-200 answer from a candidate provider.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("terrain: %s answered %d", e.URL, e.Status)
}
