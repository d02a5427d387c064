// Package store holds the routes currently on the map.
//
// The original kept the live entity list in module-level arrays; here the
// store is an explicitly owned object handed to whoever needs it, with a
// create → populate → query → clear lifecycle. The HTTP host dispatches
// handlers on separate goroutines, so mutation and iteration are guarded by
// a read-write lock; iterators range over a snapshot taken under the read
// lock, keeping the sequences lazy without holding the lock while a caller
// consumes them.
package store

import (
	"iter"
	"sync"

	"github.com/sirupsen/logrus"

	"crag_viewer/internal/models"
)

// Entry pairs a route record with the map entities rendered for it. The
// visuals are owned by the renderer; the store only keeps the association so
// a clicked handle can be traced back to its record.
type Entry struct {
	Record  models.RouteRecord
	Visuals []models.Visual
}

// Store is the ordered collection of active routes. Insertion order is
// preserved through All and Filter. Same-named routes may coexist; users do
// re-import collections they already have.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	release func(models.Visual)
}

// New returns an empty store. release, if non-nil, is called for every
// visual handle when the store is cleared, letting the renderer tear down
// its primitives.
func New(release func(models.Visual)) *Store {
	return &Store{release: release}
}

// Add appends one route with its visual handles. A record with fewer than
// two coordinates cannot be drawn and is rejected here rather than at
// construction; the rejection is logged and the store is left unchanged.
func (s *Store) Add(record models.RouteRecord, visuals ...models.Visual) bool {
	if !record.Drawable() {
		logrus.WithField("route", record.Name).
			Warn("store: rejecting route with fewer than 2 coordinates")
		return false
	}
	s.mu.Lock()
	s.entries = append(s.entries, Entry{Record: record, Visuals: visuals})
	s.mu.Unlock()
	return true
}

// Clear removes every entry and releases their visual handles. The release
// callbacks run outside the lock; renderers are free to call back into the
// store.
func (s *Store) Clear() {
	s.mu.Lock()
	cleared := s.entries
	s.entries = nil
	s.mu.Unlock()

	if s.release != nil {
		for _, e := range cleared {
			for _, v := range e.Visuals {
				s.release(v)
			}
		}
	}
}

// Len reports the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// snapshot captures the current entry list. Existing elements are never
// rewritten in place (entries are append-only until a bulk clear), so the
// captured slice stays valid after the lock is dropped; the cap is clipped
// so a caller cannot append into the live array.
func (s *Store) snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[:len(s.entries):len(s.entries)]
}

// All yields the entries in insertion order. The sequence is restartable:
// each range starts from the beginning, over the store as of that range.
func (s *Store) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.snapshot() {
			if !yield(e) {
				return
			}
		}
	}
}

// Filter yields the entries whose record satisfies pred, in insertion
// order. Used for grade filtering and name search; never mutates.
func (s *Store) Filter(pred func(models.RouteRecord) bool) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range s.snapshot() {
			if pred(e.Record) && !yield(e) {
				return
			}
		}
	}
}

// Records yields just the route records, in insertion order.
func (s *Store) Records() iter.Seq[models.RouteRecord] {
	return func(yield func(models.RouteRecord) bool) {
		for _, e := range s.snapshot() {
			if !yield(e.Record) {
				return
			}
		}
	}
}

// RecordOf recovers the route a visual handle belongs to. Handles are
// compared by identity, so this is a linear scan; entry counts are tens,
// not thousands.
func (s *Store) RecordOf(v models.Visual) (models.RouteRecord, bool) {
	for _, e := range s.snapshot() {
		for _, h := range e.Visuals {
			if h == v {
				return e.Record, true
			}
		}
	}
	return models.RouteRecord{}, false
}
