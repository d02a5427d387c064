package store

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crag_viewer/internal/models"
)

func routeWithPoints(name string, n int) models.RouteRecord {
	coords := make([]models.Coordinate, n)
	for i := range coords {
		coords[i] = models.Coordinate{Longitude: -123.15, Latitude: 49.68 + float64(i)*0.001, Height: float64(i) * 50}
	}
	return models.RouteRecord{Name: name, Grade: "5.10", Pitches: 1, Coordinates: coords}
}

func TestAddRejectsRoutesWithFewerThanTwoPoints(t *testing.T) {
	s := New(nil)

	assert.False(t, s.Add(routeWithPoints("empty", 0)))
	assert.False(t, s.Add(routeWithPoints("single", 1)))
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Add(routeWithPoints("ok", 2)))
	assert.Equal(t, 1, s.Len())
}

func TestAllPreservesInsertionOrderAndRestarts(t *testing.T) {
	s := New(nil)
	names := []string{"Grand Wall", "Angel's Crest", "Grand Wall"} // duplicates allowed
	for _, n := range names {
		require.True(t, s.Add(routeWithPoints(n, 3)))
	}

	collect := func() []string {
		var got []string
		for e := range s.All() {
			got = append(got, e.Record.Name)
		}
		return got
	}
	assert.Equal(t, names, collect())
	// Ranging a second time starts from the beginning again.
	assert.Equal(t, names, collect())
}

func TestFilterByGrade(t *testing.T) {
	s := New(nil)
	a := routeWithPoints("a", 2)
	a.Grade = "5.11"
	b := routeWithPoints("b", 2)
	c := routeWithPoints("c", 2)
	c.Grade = "5.11"
	for _, r := range []models.RouteRecord{a, b, c} {
		require.True(t, s.Add(r))
	}

	var names []string
	for e := range s.Filter(func(r models.RouteRecord) bool { return r.Grade == "5.11" }) {
		names = append(names, e.Record.Name)
	}
	assert.Equal(t, []string{"a", "c"}, names)
	assert.Equal(t, 3, s.Len(), "filter must not mutate the store")
}

func TestClearReleasesEveryVisual(t *testing.T) {
	released := 0
	s := New(func(models.Visual) { released++ })

	r := routeWithPoints("Grand Wall", 5)
	visuals := models.BuildVisuals(r)
	require.True(t, s.Add(r, visuals...))
	require.True(t, s.Add(routeWithPoints("Apron", 2), models.BuildVisuals(routeWithPoints("Apron", 2))...))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, len(visuals)+3, released) // second route: line + start + top
	assert.Empty(t, slices.Collect(s.All()))
}

func TestConcurrentAddAndIterate(t *testing.T) {
	s := New(nil)

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				s.Add(routeWithPoints(fmt.Sprintf("w%d-%d", w, i), 3))
			}
		}(w)
	}
	// Readers range concurrently with the writers; the race detector flags
	// any unguarded access, and each pass must see a consistent prefix.
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				seen := 0
				for range s.All() {
					seen++
				}
				assert.LessOrEqual(t, seen, writers*perWriter)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, s.Len())
}

func TestRecordOfFindsOriginatingRoute(t *testing.T) {
	s := New(nil)
	r := routeWithPoints("Angel's Crest", 4)
	visuals := models.BuildVisuals(r)
	require.True(t, s.Add(r, visuals...))

	got, ok := s.RecordOf(visuals[1])
	require.True(t, ok)
	assert.Equal(t, "Angel's Crest", got.Name)

	_, ok = s.RecordOf(&models.PointMarker{})
	assert.False(t, ok)
}
