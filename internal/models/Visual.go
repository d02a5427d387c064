package models

// Visual is a handle to one rendered map entity derived from a route. The
// renderer owns the underlying primitives; the core only keeps these tags so
// a clicked entity can be traced back to its record and released on clear.
//
// Each variant carries only the fields that apply to it, instead of one
// entity object with optional, mutually-implied fields.
type Visual interface {
	visual()
}

// Line is the route path polyline.
type Line struct {
	Positions []Coordinate
}

// PointMarker is a plain dot, used for the route start and pitch belays.
type PointMarker struct {
	Position Coordinate
}

// BillboardMarker is a labelled marker, used for the route top.
type BillboardMarker struct {
	Position Coordinate
	Text     string
}

// Pointer receivers: a handle is an identity, two markers at the same
// position are still distinct entities.
func (*Line) visual()            {}
func (*PointMarker) visual()     {}
func (*BillboardMarker) visual() {}

// BuildVisuals derives the full set of map entities for a drawable record:
// the path line, a start marker, a labelled top marker, and one belay marker
// per pitch boundary.
func BuildVisuals(r RouteRecord) []Visual {
	if !r.Drawable() {
		return nil
	}
	n := len(r.Coordinates)
	visuals := []Visual{
		&Line{Positions: r.Coordinates},
		&PointMarker{Position: r.Coordinates[0]},
		&BillboardMarker{Position: r.Coordinates[n-1], Text: r.Name},
	}
	for _, i := range PitchMarkerIndices(n, r.Pitches) {
		visuals = append(visuals, &PointMarker{Position: r.Coordinates[i]})
	}
	return visuals
}

// PitchMarkerIndices returns the coordinate indices at which belay markers
// are placed: evenly spaced through the sequence in proportion to pitch
// count, ignoring actual segment lengths. Geometry-aware placement was
// considered and rejected; even spacing matches the rendered look of routes
// drawn with roughly uniform vertex density.
func PitchMarkerIndices(pointCount, pitches int) []int {
	if pointCount < 2 || pitches < 2 {
		return nil
	}
	indices := make([]int, 0, pitches-1)
	last := 0
	for p := 1; p < pitches; p++ {
		i := p * (pointCount - 1) / pitches
		// Short coordinate sequences collapse neighbouring pitches onto the
		// same vertex; one marker is enough there.
		if i > last && i < pointCount-1 {
			indices = append(indices, i)
			last = i
		}
	}
	return indices
}
