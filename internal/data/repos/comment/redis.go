package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

// redisCommentRepo keeps one JSON document per comment plus one sorted set
// per page scored by creation time in microseconds.
type redisCommentRepo struct {
	rdb    goredis.UniversalClient
	prefix string
	log    *logger.Logger
}

func NewRedisCommentRepo(rdb goredis.UniversalClient, prefix string, baseLog *logger.Logger) CommentRepo {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "trainer"
	}
	return &redisCommentRepo{
		rdb:    rdb,
		prefix: prefix,
		log:    baseLog.With("repo", "RedisCommentRepo", "prefix", prefix),
	}
}

func (r *redisCommentRepo) docKey(id string) string {
	return r.prefix + ":comment:" + id
}

func (r *redisCommentRepo) pageKey(pageID string) string {
	return r.prefix + ":page:" + pageID
}

func (r *redisCommentRepo) Create(ctx context.Context, row *types.Comment) error {
	if row == nil {
		return ErrNilComment
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode comment: %w", err)
	}
	id := row.ID.String()
	_, err = r.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Set(ctx, r.docKey(id), raw, 0)
		p.ZAdd(ctx, r.pageKey(row.PageID), goredis.Z{
			Score:  float64(row.Timestamp.UnixMicro()),
			Member: id,
		})
		return nil
	})
	return err
}

func (r *redisCommentRepo) ListByPageID(ctx context.Context, pageID string) ([]*types.Comment, error) {
	out := []*types.Comment{}
	ids, err := r.rdb.ZRevRange(ctx, r.pageKey(pageID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			r.log.Warn("comment document missing", "page_id", pageID, "comment_id", ids[i])
			continue
		}
		var c types.Comment
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("decode comment %s: %w", ids[i], err)
		}
		out = append(out, &c)
	}
	return out, nil
}
