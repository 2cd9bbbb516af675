package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres pool. SQL is only logged at debug level.
func NewDatabase(cfg *Config, log *slog.Logger) (*gorm.DB, error) {
	level := gormlogger.Silent
	if cfg.LogLevel == "debug" {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("database connection established")
	return db, nil
}

// Migrate creates or updates the users table, the three event tables and the
// companion and counseling conversation tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.MoodEvent{},
		&domain.JournalEntry{},
		&domain.BMIRecord{},
		&domain.ChatMessage{},
		&domain.CounselingSession{},
		&domain.CounselingMessage{},
	)
}
