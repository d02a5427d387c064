package config

// Server and terrain settings, all environment-driven with defaults that
// work for a local checkout.

// Addr returns the listen address for the HTTP server.
func Addr() string {
	return getEnv("LISTEN_ADDR", "0.0.0.0:8080")
}

// TerrainDir is the directory holding pre-generated terrain tiles
// (layer.json plus z/x/y .terrain files, gzipped on disk).
func TerrainDir() string {
	return getEnv("TERRAIN_DIR", "./terrain")
}

// StaticDir is the directory holding the viewer's web assets.
func StaticDir() string {
	return getEnv("STATIC_DIR", "./web")
}

// TerrainFallbackURLs are alternate terrain providers tried, in order, when
// the local tile set is missing or incomplete. Empty entries are ignored.
func TerrainFallbackURLs() []string {
	urls := []string{
		getEnv("TERRAIN_URL", ""),
		getEnv("TERRAIN_FALLBACK_URL", ""),
	}
	out := urls[:0]
	for _, u := range urls {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
