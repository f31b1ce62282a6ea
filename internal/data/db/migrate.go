package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/nogi-trainer/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Comment{},
	)
}

func (s *Service) AutoMigrateAll() error {
	if err := AutoMigrateAll(s.db); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if s.driver == "postgres" {
		return EnsureCommentIndexes(s.db)
	}
	return nil
}

// EnsureCommentIndexes adds the newest-first index the list query walks.
func EnsureCommentIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_comment_page_created_desc
		ON comment (page_id, created_at DESC, id DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_comment_page_created_desc: %w", err)
	}
	return nil
}
