package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// entry is the single table backing the durable store. It plays the
// role the browser's localStorage plays for the web client.
type entry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string { return "kv_entries" }

// SQLite is a durable Store backed by a local sqlite file.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the store at path and migrates its
// schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("migrate storage: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	var e entry
	err := s.db.First(&e, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *SQLite) Set(key, value string) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry{Key: key, Value: value}).Error
}

func (s *SQLite) Remove(key string) error {
	return s.db.Delete(&entry{}, "key = ?", key).Error
}
