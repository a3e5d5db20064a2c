// Package db opens the storage backend and applies schema migrations.
// Postgres is used when a DSN is configured, otherwise an embedded
// sqlite file, so local development needs no external services.
package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/carlinegarage/invoicing/internal/config"
	"github.com/carlinegarage/invoicing/internal/models"
)

// Connect opens the database described by cfg. Postgres connections are
// retried a few times to let the server come up alongside us.
func Connect(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}
	if cfg.DBDebug {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	if cfg.DatabaseDSN == "" {
		db, err := gorm.Open(sqlite.Open(cfg.StoragePath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.StoragePath, err)
		}
		log.Info("storage ready", zap.String("driver", "sqlite"), zap.String("path", cfg.StoragePath))
		return db, nil
	}

	dsn := NormalizeDSN(cfg.DatabaseDSN)
	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), gormCfg)
		if err == nil {
			break
		}
		log.Warn("database connection failed, retrying",
			zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info("storage ready", zap.String("driver", "postgres"))
	return db, nil
}

// Migrate creates or updates the two key/value tables. Blob contents
// evolve through the settings defaulting layer, not through SQL, so the
// table schema stays stable.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.SettingsRecord{},
		&models.DraftRecord{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
