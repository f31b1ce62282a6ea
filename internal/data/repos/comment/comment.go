package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

var ErrNilComment = errors.New("nil comment")

// CommentRepo is the comment collection: atomic single inserts and reads
// filtered by page, newest first.
type CommentRepo interface {
	Create(ctx context.Context, row *types.Comment) error
	ListByPageID(ctx context.Context, pageID string) ([]*types.Comment, error)
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return &commentRepo{db: db, log: baseLog.With("repo", "CommentRepo")}
}

func (r *commentRepo) Create(ctx context.Context, row *types.Comment) error {
	if row == nil {
		return ErrNilComment
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *commentRepo) ListByPageID(ctx context.Context, pageID string) ([]*types.Comment, error) {
	out := []*types.Comment{}
	if err := r.db.WithContext(ctx).
		Where("page_id = ?", pageID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
