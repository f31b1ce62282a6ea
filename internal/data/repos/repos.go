package repos

import (
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/nogi-trainer/internal/data/repos/comment"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type CommentRepo = comment.CommentRepo

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return comment.NewCommentRepo(db, baseLog)
}

func NewRedisCommentRepo(rdb goredis.UniversalClient, prefix string, baseLog *logger.Logger) CommentRepo {
	return comment.NewRedisCommentRepo(rdb, prefix, baseLog)
}
