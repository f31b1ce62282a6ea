package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns a fresh, migrated in-memory SQLite database owned by tb.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&types.Comment{}); err != nil {
		tb.Fatalf("automigrate: %v", err)
	}
	return db
}

func NewComment(pageID, userName, text string, ts time.Time) *types.Comment {
	return &types.Comment{
		ID:        uuid.New(),
		PageID:    pageID,
		UserName:  userName,
		Text:      text,
		Timestamp: ts.UTC(),
	}
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, pageID, userName, text string, ts time.Time) *types.Comment {
	tb.Helper()
	c := NewComment(pageID, userName, text, ts)
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
	return c
}
