package persist

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"crag_viewer/internal/models"
)

// RoutesKey is the fixed key the route array lives under, carried over from
// the original's local-storage slot.
const RoutesKey = "squamish_routes"

// persistedRoute is the storage shape: object-form coordinates, no
// firstAscent. Changing it breaks every saved blob, so it only ever gains
// optional fields.
type persistedRoute struct {
	Name        string              `json:"name"`
	Grade       string              `json:"grade"`
	Length      float64             `json:"length"`
	Pitches     int                 `json:"pitches"`
	Description string              `json:"description"`
	Coordinates []models.Coordinate `json:"coordinates"`
}

// RouteLog persists user-created routes as one JSON array under RoutesKey.
//
// Append is a read-modify-write of the whole array, so the mutex lives here,
// spanning the full Get-then-Set cycle: locking inside the KeyValue would
// still let two appends interleave and the later write drop the earlier
// route.
type RouteLog struct {
	mu sync.Mutex
	kv KeyValue
}

func NewRouteLog(kv KeyValue) *RouteLog {
	return &RouteLog{kv: kv}
}

// LoadAll returns every persisted route. An absent key or unparseable blob
// is "no data", never an error: a corrupt save must not take down the
// viewer, and the next Append rewrites the key from scratch anyway.
func (l *RouteLog) LoadAll() []models.RouteRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	text, ok := l.kv.Get(RoutesKey)
	if !ok {
		return nil
	}
	var stored []persistedRoute
	if err := json.Unmarshal([]byte(text), &stored); err != nil {
		logrus.WithError(err).Warn("persist: ignoring corrupt route storage")
		return nil
	}
	records := make([]models.RouteRecord, 0, len(stored))
	for _, p := range stored {
		records = append(records, models.RouteRecord{
			Name:        p.Name,
			Grade:       p.Grade,
			Length:      p.Length,
			Pitches:     p.Pitches,
			Description: p.Description,
			Coordinates: p.Coordinates,
		}.FillDefaults())
	}
	return records
}

// Append adds one route to the persisted array: read the current array,
// append, write the whole array back, all under the log's mutex. Writers in
// a second process would still need a transactional store; one process is
// the deployment model here.
func (l *RouteLog) Append(record models.RouteRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stored []persistedRoute
	if text, ok := l.kv.Get(RoutesKey); ok {
		if err := json.Unmarshal([]byte(text), &stored); err != nil {
			logrus.WithError(err).Warn("persist: overwriting corrupt route storage")
			stored = nil
		}
	}
	stored = append(stored, persistedRoute{
		Name:        record.Name,
		Grade:       record.Grade,
		Length:      record.Length,
		Pitches:     record.Pitches,
		Description: record.Description,
		Coordinates: record.Coordinates,
	})
	out, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return l.kv.Set(RoutesKey, string(out))
}
