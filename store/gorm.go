package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore is a GORM-backed implementation of SessionStore.
// Use constructor NewSessionStore to obtain an instance.
type gormStore struct{ db *gorm.DB }

// NewSessionStore creates a SessionStore. Accepts *gorm.DB to avoid global access.
func NewSessionStore(db *gorm.DB) SessionStore { return &gormStore{db: db} }

func (s *gormStore) Get(key string) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("session store not initialized")
	}
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *gormStore) Set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("session store not initialized")
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Entry{Key: key, Value: value}).Error
}

func (s *gormStore) Clear(keys ...string) error {
	if s.db == nil {
		return fmt.Errorf("session store not initialized")
	}
	if len(keys) == 0 {
		return nil
	}
	return s.db.Where("key IN ?", keys).Delete(&Entry{}).Error
}
