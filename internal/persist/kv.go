// Package persist stores user-created routes across sessions.
//
// The adapter writes one JSON array under one fixed key of an opaque
// key-value store, exactly as the original did with browser local storage.
// The persisted shape uses object-form coordinates and is deliberately not
// the GeoJSON encoding; the two are independent encodings of the same
// entity.
package persist

// KeyValue is the opaque string store the route log writes through. The
// second return of Get reports whether the key exists.
type KeyValue interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemStore is a map-backed KeyValue, used in tests and as the fallback when
// no database is configured.
type MemStore struct {
	m map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.m[key] = value
	return nil
}
