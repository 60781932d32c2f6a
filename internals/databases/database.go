package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/logger"
)

var DB *gorm.DB

// Connect membuka koneksi PostgreSQL. Error unique-violation diterjemahkan ke
// gorm.ErrDuplicatedKey supaya controller bisa membalas 409.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	logger.Info("🔌 Koneksi ke PostgreSQL...", "host", cfg.DBHost, "db", cfg.DBName)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		TranslateError: true,
		Logger:         configs.NewGormLogger(logger.Default(), cfg.DBSlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	DB = db
	logger.Info("✅ DB connected.")
	return db, nil
}

func TunePool(db *gorm.DB, cfg *configs.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
