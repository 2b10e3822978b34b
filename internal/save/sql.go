package save

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SaveRecord is one stored blob
type SaveRecord struct {
	Key       string         `gorm:"primaryKey;size:64" json:"key"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// TableName sets the table name
func (*SaveRecord) TableName() string {
	return "saves"
}

// SQLStore keeps blobs in a SQLite table through GORM
type SQLStore struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

// OpenSQLite opens (or creates) the database at path and migrates the
// schema. An empty path uses a private in-memory database.
func OpenSQLite(path string, log zerolog.Logger) (*SQLStore, error) {
	dsn := "file::memory:"
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database dir: %w", err)
		}
		dsn = path
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if path == "" {
		// Each pooled connection to :memory: would see its own database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&SaveRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate saves table: %w", err)
	}

	if path == "" {
		log.Info().Msg("Using in-memory SQLite save store")
	} else {
		log.Info().Str("path", path).Msg("Using SQLite save store")
	}
	return &SQLStore{DB: db, Logger: log}, nil
}

// Save upserts the blob under key
func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	rec := SaveRecord{Key: key, Data: datatypes.JSON(data), UpdatedAt: time.Now().UTC()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	s.Logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("Saved")
	return nil
}

// Load returns the blob under key
func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	var rec SaveRecord
	err := s.DB.WithContext(ctx).Where(&SaveRecord{Key: key}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(rec.Data), nil
}

// Delete removes the blob under key
func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&SaveRecord{Key: key}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close releases the database
func (s *SQLStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
