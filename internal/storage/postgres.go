package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/calorelia/calorelia-bot/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one persisted key/value pair.
type Slot struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

// TableName overrides the gorm default
func (Slot) TableName() string {
	return "slots"
}

// PostgresStore keeps slots in a single Postgres table.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects and migrates the slots table.
func NewPostgresStore(cfg config.DBConfig) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate slots table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var slot Slot
	err := s.db.WithContext(ctx).First(&slot, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return slot.Value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&Slot{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Slot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
