package db

import (
	"context"
	"testing"

	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

func TestSQLiteServiceMigratesCommentTable(t *testing.T) {
	svc, err := NewSQLiteService(logger.NewNop(), ":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteService: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if svc.Driver() != "sqlite" {
		t.Fatalf("driver: got=%q", svc.Driver())
	}
	if err := svc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	if !svc.DB().Migrator().HasTable("comment") {
		t.Fatalf("comment table missing after migrate")
	}
	if !svc.DB().Migrator().HasIndex("comment", "idx_comment_page_created") {
		t.Fatalf("page/created index missing after migrate")
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "trainer"}
	if got := cfg.DSN(); got != "postgres://u:p@db:5432/trainer?sslmode=disable" {
		t.Fatalf("dsn: %q", got)
	}
}
