// Package stats offers read-only aggregates and queries over route records.
package stats

import (
	"iter"
	"math"
	"strings"

	"crag_viewer/internal/models"
)

// Statistics summarizes a set of routes for the info panel.
type Statistics struct {
	TotalRoutes   int            `json:"totalRoutes"`
	ByGrade       map[string]int `json:"byGrade"`
	TotalLength   float64        `json:"totalLength"`
	TotalPitches  int            `json:"totalPitches"`
	AverageLength float64        `json:"averageLength"`
}

// Compute aggregates the records in one pass. ByGrade only carries grades
// that occur; unseen grades get no zero entry. AverageLength is rounded to
// the nearest meter, and 0 for an empty set.
func Compute(records iter.Seq[models.RouteRecord]) Statistics {
	s := Statistics{ByGrade: make(map[string]int)}
	for r := range records {
		s.TotalRoutes++
		s.ByGrade[r.Grade]++
		s.TotalLength += r.Length
		s.TotalPitches += r.Pitches
	}
	if s.TotalRoutes > 0 {
		s.AverageLength = math.Round(s.TotalLength / float64(s.TotalRoutes))
	}
	return s
}

// FindByNameSubstring returns the records whose name contains term,
// case-insensitively, in input order. An empty term matches everything.
// No ranking; the match list is as long as the user's patience.
func FindByNameSubstring(records iter.Seq[models.RouteRecord], term string) []models.RouteRecord {
	needle := strings.ToLower(term)
	var matches []models.RouteRecord
	for r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, r)
		}
	}
	return matches
}
