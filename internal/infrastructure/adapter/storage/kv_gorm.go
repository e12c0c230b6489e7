package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	coreport "github.com/skylar-games/case-opener/internal/domain/port/core"
)

// kvRecord is the single table behind the durable store: one row per logical
// record. The ledger only ever writes two keys, "accounts" and
// "current_account", mirroring the browser-local layout this store replaces.
type kvRecord struct {
	Key   string `gorm:"column:record_key;primaryKey;size:64"`
	Value []byte `gorm:"column:record_value"`
}

// TableName sets the gorm table name
func (kvRecord) TableName() string {
	return "kv_records"
}

// GormStore is the durable KVStore over a gorm-managed database
type GormStore struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewGormStore creates the store and ensures its table exists
func NewGormStore(db *gorm.DB, logger coreport.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, mapError(err, "migrate", kvRecord{}.TableName())
	}
	return &GormStore{db: db, logger: logger}, nil
}

// Get returns the value stored under key
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record kvRecord
	err := s.db.WithContext(ctx).First(&record, "record_key = ?", key).Error
	if err != nil {
		return nil, mapError(err, "get", key)
	}
	return record.Value, nil
}

// Set writes value under key, replacing any previous value
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"record_value"}),
		}).
		Create(&kvRecord{Key: key, Value: value}).Error
	if err != nil {
		return mapError(err, "set", key)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&kvRecord{}, "record_key = ?", key).Error
	if err != nil {
		return mapError(err, "delete", key)
	}
	return nil
}
