package models

// Coordinate is one vertex of a route path. Longitude/latitude are decimal
// degrees (WGS84), height is meters above the ellipsoid.
type Coordinate struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
}

// RouteRecord describes one climbing route and its path from base to summit.
// It is a value object: edits replace a record, they never mutate one in
// place. Coordinate order is meaningful and must survive every encoding.
//
// A record with fewer than two coordinates is legal to construct (a route
// being drawn starts empty) but is rejected at map insertion; see
// store.Store.Add.
type RouteRecord struct {
	Name        string       `json:"name"`
	Grade       string       `json:"grade"` // free-form label, e.g. "5.10b"
	Length      float64      `json:"length"` // meters
	Pitches     int          `json:"pitches"`
	Description string       `json:"description"`
	FirstAscent string       `json:"firstAscent,omitempty"`
	Coordinates []Coordinate `json:"coordinates"`
}

// Decode-time defaulting policy. Every field absent from an imported feature
// or a persisted record takes the value listed here, nowhere else.
const (
	DefaultName    = "Unnamed Route"
	DefaultGrade   = "5.10"
	DefaultLength  = 0
	DefaultPitches = 1
	DefaultHeight  = 0
)

// FillDefaults returns a copy of r with the defaulting policy applied to
// zero-valued fields. Description and FirstAscent may legitimately be empty
// and are left alone.
func (r RouteRecord) FillDefaults() RouteRecord {
	if r.Name == "" {
		r.Name = DefaultName
	}
	if r.Grade == "" {
		r.Grade = DefaultGrade
	}
	if r.Length < 0 {
		r.Length = DefaultLength
	}
	if r.Pitches < 1 {
		r.Pitches = DefaultPitches
	}
	return r
}

// Drawable reports whether the record satisfies the minimum-point invariant
// required for map insertion.
func (r RouteRecord) Drawable() bool {
	return len(r.Coordinates) >= 2
}
