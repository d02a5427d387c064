// Package codec converts route records to and from GeoJSON FeatureCollections.
//
// Encoding is strict: every property is always present, coordinates are
// [lon, lat, height] triples. Decoding is tolerant: heterogeneous
// collections are accepted and non-LineString features skipped, missing
// properties take the defaults from the models package, and features that
// cannot make a drawable route are dropped with a warning instead of
// failing the batch.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	geojson "github.com/twpayne/go-geom/encoding/geojson"

	"crag_viewer/internal/models"
)

// ErrFormat marks malformed top-level input: text that is not JSON, or whose
// root is not a FeatureCollection. Callers surface it to the user; nothing
// from a failed parse is applied.
var ErrFormat = errors.New("not a GeoJSON FeatureCollection")

// Result is the outcome of a decode: the accepted records plus how many
// features were skipped as unsupported or undrawable.
type Result struct {
	Records []models.RouteRecord
	Skipped int
}

// EncodeAll renders the records as a FeatureCollection string. Field order
// within objects is not a contract; presence of every property is.
func EncodeAll(records []models.RouteRecord) (string, error) {
	fc := &geojson.FeatureCollection{Features: []*geojson.Feature{}}
	for _, r := range records {
		coords := make([]geom.Coord, len(r.Coordinates))
		for i, c := range r.Coordinates {
			coords[i] = geom.Coord{c.Longitude, c.Latitude, c.Height}
		}
		ls, err := geom.NewLineString(geom.XYZ).SetCoords(coords)
		if err != nil {
			return "", fmt.Errorf("encode %q: %w", r.Name, err)
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: ls,
			Properties: map[string]interface{}{
				"name":        r.Name,
				"grade":       r.Grade,
				"length":      r.Length,
				"pitches":     r.Pitches,
				"description": r.Description,
				"firstAscent": r.FirstAscent,
			},
		})
	}
	b, err := json.Marshal(fc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeAll parses a FeatureCollection string into route records. It returns
// ErrFormat for malformed top-level input; per-feature problems only reduce
// the result, they never fail it.
func DecodeAll(text string) (Result, error) {
	var envelope struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if envelope.Type != "FeatureCollection" {
		return Result{}, fmt.Errorf("%w: top-level type %q", ErrFormat, envelope.Type)
	}

	var res Result
	for i, raw := range envelope.Features {
		rec, ok := decodeFeature(i, raw)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// decodeFeature turns one feature into a record, or reports it unusable.
func decodeFeature(index int, raw json.RawMessage) (models.RouteRecord, bool) {
	var f geojson.Feature
	if err := json.Unmarshal(raw, &f); err != nil {
		logrus.WithError(err).WithField("feature", index).
			Warn("codec: skipping unparseable feature")
		return models.RouteRecord{}, false
	}
	ls, isLine := f.Geometry.(*geom.LineString)
	if !isLine {
		// Heterogeneous collections are fine; we only draw lines.
		logrus.WithField("feature", index).Debug("codec: skipping non-LineString feature")
		return models.RouteRecord{}, false
	}

	coords := ls.Coords()
	if len(coords) < 2 {
		logrus.WithField("feature", index).
			Warn("codec: skipping LineString with fewer than 2 coordinates")
		return models.RouteRecord{}, false
	}

	rec := models.RouteRecord{
		Name:        stringProp(f.Properties, "name"),
		Grade:       stringProp(f.Properties, "grade"),
		Length:      numberProp(f.Properties, "length"),
		Pitches:     int(numberProp(f.Properties, "pitches")),
		Description: stringProp(f.Properties, "description"),
		FirstAscent: stringProp(f.Properties, "firstAscent"),
		Coordinates: make([]models.Coordinate, len(coords)),
	}
	for i, c := range coords {
		p := models.Coordinate{Longitude: c[0], Latitude: c[1], Height: models.DefaultHeight}
		if len(c) >= 3 {
			p.Height = c[2]
		}
		rec.Coordinates[i] = p
	}
	return rec.FillDefaults(), true
}

func stringProp(props map[string]interface{}, key string) string {
	if s, ok := props[key].(string); ok {
		return s
	}
	return ""
}

func numberProp(props map[string]interface{}, key string) float64 {
	if n, ok := props[key].(float64); ok {
		return n
	}
	return 0
}
