package persist

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"crag_viewer/internal/models"
)

// GormStore is a KeyValue backed by the storage_entries table. Its mutex
// only guards individual Get/Set calls; the route log holds its own lock
// across the whole read-modify-write cycle.
type GormStore struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry models.StorageEntry
	if err := s.db.First(&entry, "k = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("key", key).Error("persist: read failed")
		}
		// Absent and unreadable look the same to the caller; the adapter
		// treats both as "no data".
		return "", false
	}
	return entry.V, true
}

func (s *GormStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.StorageEntry{K: key, V: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v"}),
	}).Create(&entry).Error
}
