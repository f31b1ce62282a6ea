package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/nogi-trainer/internal/data/repos"
	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/apierr"
	"github.com/yungbote/nogi-trainer/internal/platform/ctxutil"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type CommentService interface {
	List(ctx context.Context, pageID string) ([]*types.Comment, error)
	Create(ctx context.Context, in types.CommentInput) (*types.Comment, error)
}

type commentService struct {
	log     *logger.Logger
	repo    repos.CommentRepo
	metrics *observability.Metrics
	now     func() time.Time
}

func NewCommentService(baseLog *logger.Logger, repo repos.CommentRepo, metrics *observability.Metrics) CommentService {
	return &commentService{
		log:     baseLog.With("service", "CommentService"),
		repo:    repo,
		metrics: metrics,
		now:     time.Now,
	}
}

// List never filters beyond pageId and never returns nil on success.
func (s *commentService) List(ctx context.Context, pageID string) ([]*types.Comment, error) {
	rows, err := s.repo.ListByPageID(ctx, pageID)
	s.metrics.ObserveCommentOp("list", err)
	if err != nil {
		s.log.Error("list comments failed", "page_id", pageID, "request_id", ctxutil.RequestID(ctx), "error", err)
		return nil, apierr.Internal("load_comments_failed", fmt.Errorf("load comments: %w", err))
	}
	if rows == nil {
		rows = []*types.Comment{}
	}
	return rows, nil
}

// Create stores the input as given. Blank names and text are accepted.
func (s *commentService) Create(ctx context.Context, in types.CommentInput) (*types.Comment, error) {
	row := &types.Comment{
		ID:        uuid.New(),
		PageID:    in.PageID,
		UserName:  in.UserName,
		Text:      in.Text,
		Timestamp: s.now().UTC().Truncate(time.Microsecond),
	}
	err := s.repo.Create(ctx, row)
	s.metrics.ObserveCommentOp("create", err)
	if err != nil {
		s.log.Error("create comment failed", "page_id", in.PageID, "request_id", ctxutil.RequestID(ctx), "error", err)
		return nil, apierr.Internal("create_comment_failed", fmt.Errorf("create comment: %w", err))
	}
	s.log.Debug("comment created", "page_id", row.PageID, "comment_id", row.ID, "user_name", row.UserName)
	return row, nil
}
