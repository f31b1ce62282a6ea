package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/nogi-trainer/internal/data/db"
	"github.com/yungbote/nogi-trainer/internal/data/repos"
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

var (
	newPostgresService = db.NewPostgresService
	newSQLiteService   = db.NewSQLiteService
	newRedisClient     = func(cfg RedisConfig) goredis.UniversalClient {
		return goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}
)

type CommentStoreBootstrapErrorCode string

const (
	CommentStoreBootstrapErrorInvalidMode      CommentStoreBootstrapErrorCode = "invalid_mode"
	CommentStoreBootstrapErrorMissingRedisAddr CommentStoreBootstrapErrorCode = "missing_redis_addr"
	CommentStoreBootstrapErrorConnectFailed    CommentStoreBootstrapErrorCode = "connect_failed"
	CommentStoreBootstrapErrorMigrateFailed    CommentStoreBootstrapErrorCode = "migrate_failed"
)

type CommentStoreBootstrapError struct {
	Code  CommentStoreBootstrapErrorCode
	Mode  string
	Cause error
}

func (e *CommentStoreBootstrapError) Error() string {
	if e == nil {
		return "comment store bootstrap failed"
	}
	return fmt.Sprintf("comment store bootstrap failed (code=%s mode=%q): %v", e.Code, e.Mode, e.Cause)
}

func (e *CommentStoreBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// commentStore is the selected backend plus its lifecycle hooks.
type commentStore struct {
	Mode  string
	Repo  repos.CommentRepo
	ping  func(ctx context.Context) error
	close func() error
}

func (s *commentStore) Ping(ctx context.Context) error {
	if s == nil || s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *commentStore) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func resolveCommentStore(ctx context.Context, log *logger.Logger, cfg Config, metrics *observability.Metrics) (*commentStore, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.CommentStore))
	metrics.SetCommentStoreActive(mode)

	store, err := openCommentStore(ctx, log, cfg, mode)
	if err != nil {
		code := commentStoreBootstrapErrorCode(err)
		metrics.ObserveCommentStoreBootstrap(mode, "error", string(code))
		log.Error("Comment store bootstrap failed", "mode", mode, "error_code", code, "error", err)
		return nil, err
	}
	metrics.ObserveCommentStoreBootstrap(mode, "success", "none")
	log.Info("Comment store ready", "mode", mode)
	return store, nil
}

func openCommentStore(ctx context.Context, log *logger.Logger, cfg Config, mode string) (*commentStore, error) {
	switch mode {
	case CommentStorePostgres, CommentStoreSQLite:
		var (
			svc *db.Service
			err error
		)
		if mode == CommentStorePostgres {
			svc, err = newPostgresService(log, cfg.Postgres)
		} else {
			svc, err = newSQLiteService(log, cfg.SQLitePath)
		}
		if err != nil {
			return nil, &CommentStoreBootstrapError{Code: CommentStoreBootstrapErrorConnectFailed, Mode: mode, Cause: err}
		}
		if err := svc.AutoMigrateAll(); err != nil {
			_ = svc.Close()
			return nil, &CommentStoreBootstrapError{Code: CommentStoreBootstrapErrorMigrateFailed, Mode: mode, Cause: err}
		}
		return &commentStore{
			Mode:  mode,
			Repo:  repos.NewCommentRepo(svc.DB(), log),
			ping:  svc.Ping,
			close: svc.Close,
		}, nil

	case CommentStoreRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return nil, &CommentStoreBootstrapError{
				Code:  CommentStoreBootstrapErrorMissingRedisAddr,
				Mode:  mode,
				Cause: errors.New("REDIS_ADDR is required when COMMENT_STORE=redis"),
			}
		}
		rdb := newRedisClient(cfg.Redis)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, &CommentStoreBootstrapError{Code: CommentStoreBootstrapErrorConnectFailed, Mode: mode, Cause: err}
		}
		return &commentStore{
			Mode:  mode,
			Repo:  repos.NewRedisCommentRepo(rdb, cfg.Redis.Prefix, log),
			ping:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			close: rdb.Close,
		}, nil
	}

	return nil, &CommentStoreBootstrapError{
		Code:  CommentStoreBootstrapErrorInvalidMode,
		Mode:  mode,
		Cause: fmt.Errorf("unsupported comment store %q (want postgres, sqlite or redis)", mode),
	}
}

func commentStoreBootstrapErrorCode(err error) CommentStoreBootstrapErrorCode {
	var bootstrapErr *CommentStoreBootstrapError
	if errors.As(err, &bootstrapErr) && bootstrapErr.Code != "" {
		return bootstrapErr.Code
	}
	return CommentStoreBootstrapErrorConnectFailed
}
