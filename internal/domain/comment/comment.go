package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user note attached to one move. PageID is the move id; it is
// not checked against the catalog.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PageID    string    `gorm:"column:page_id;not null;default:'';index:idx_comment_page_created,priority:1" json:"pageId"`
	UserName  string    `gorm:"column:user_name;not null;default:''" json:"userName"`
	Text      string    `gorm:"column:text;type:text;not null;default:''" json:"text"`
	Timestamp time.Time `gorm:"column:created_at;not null;index:idx_comment_page_created,priority:2" json:"timestamp"`
}

func (Comment) TableName() string { return "comment" }

// Input is the client-supplied part of a comment.
type Input struct {
	PageID   string `json:"pageId"`
	UserName string `json:"userName"`
	Text     string `json:"text"`
}
