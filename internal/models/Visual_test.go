package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillDefaults(t *testing.T) {
	got := RouteRecord{Length: -5}.FillDefaults()
	assert.Equal(t, DefaultName, got.Name)
	assert.Equal(t, DefaultGrade, got.Grade)
	assert.EqualValues(t, DefaultLength, got.Length)
	assert.Equal(t, DefaultPitches, got.Pitches)
	assert.Empty(t, got.Description, "empty description is legitimate")

	kept := RouteRecord{Name: "Diedre", Grade: "5.8", Length: 180, Pitches: 6}.FillDefaults()
	assert.Equal(t, "Diedre", kept.Name)
	assert.Equal(t, "5.8", kept.Grade)
}

func TestPitchMarkerIndicesAreEvenlySpaced(t *testing.T) {
	// 11 points, 5 pitches: a marker every second vertex, endpoints excluded.
	assert.Equal(t, []int{2, 4, 6, 8}, PitchMarkerIndices(11, 5))

	// Single pitch means no intermediate belay.
	assert.Nil(t, PitchMarkerIndices(10, 1))

	// More pitches than vertices: collapsed belays merge to one marker each.
	assert.Equal(t, []int{1, 2}, PitchMarkerIndices(4, 10))

	assert.Nil(t, PitchMarkerIndices(1, 3))
}

func TestBuildVisuals(t *testing.T) {
	r := RouteRecord{
		Name:    "Angel's Crest",
		Pitches: 3,
		Coordinates: []Coordinate{
			{Height: 100}, {Height: 200}, {Height: 300}, {Height: 400}, {Height: 500}, {Height: 600}, {Height: 700},
		},
	}
	visuals := BuildVisuals(r)
	// line + start + top + 2 belays
	require.Len(t, visuals, 5)

	line, ok := visuals[0].(*Line)
	require.True(t, ok)
	assert.Equal(t, r.Coordinates, line.Positions)

	top, ok := visuals[2].(*BillboardMarker)
	require.True(t, ok)
	assert.Equal(t, "Angel's Crest", top.Text)
	assert.Equal(t, r.Coordinates[6], top.Position)

	assert.Nil(t, BuildVisuals(RouteRecord{Coordinates: []Coordinate{{}}}))
}
