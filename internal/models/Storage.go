package models

// StorageEntry is one row of the key-value table backing the persistence
// adapter. It stands in for the browser's local storage: one string key, one
// JSON blob value.
type StorageEntry struct {
	K string `gorm:"primaryKey;column:k"`
	V string `gorm:"column:v;type:text"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (StorageEntry) TableName() string {
	return "storage_entries"
}
