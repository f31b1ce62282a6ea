package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

// NewSQLiteService opens a file (or ":memory:") database for local runs.
func NewSQLiteService(logg *logger.Logger, path string) (*Service, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "trainer.db"
	}
	serviceLog := logg.With("service", "SQLiteService", "path", path)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}
	// A single connection keeps ":memory:" databases from splitting per connection.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	serviceLog.Info("Opened SQLite")
	return &Service{db: db, log: serviceLog, driver: "sqlite"}, nil
}
