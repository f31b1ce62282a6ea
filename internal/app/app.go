package app

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	"github.com/yungbote/nogi-trainer/internal/http"
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

var initOTel = observability.InitOTel

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Catalog  *catalog.Registry
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	server       *http.Server
	store        *commentStore
	otelShutdown func(context.Context) error
	closeOnce    sync.Once
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return NewWithConfig(ctx, log, cfg)
}

// NewWithConfig wires the server from an already loaded config.
func NewWithConfig(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	metrics := observability.Init(log, cfg.MetricsEnabled)
	otelShutdown := initOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		ServiceName: cfg.ServiceName,
		Environment: cfg.LogMode,
		Version:     cfg.Version,
		Endpoint:    cfg.Otel.Endpoint,
		Insecure:    cfg.Otel.Insecure,
		Headers:     observability.ParseHeaders(cfg.Otel.Headers),
		SampleRatio: cfg.Otel.SampleRatio,
	})

	fail := func(err error) (*App, error) {
		if otelShutdown != nil {
			sctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
			if serr := otelShutdown(sctx); serr != nil {
				log.Warn("otel shutdown failed", "error", serr)
			}
			cancel()
		}
		log.Sync()
		return nil, err
	}

	reg, err := catalog.Default()
	if err != nil {
		return fail(fmt.Errorf("load catalog: %w", err))
	}
	for _, mm := range reg.Validate() {
		log.Warn("Catalog move count is stale", "category", mm.Key, "declared", mm.Declared, "actual", mm.Actual)
	}
	for _, c := range reg.Categories() {
		metrics.SetCatalogMoves(c.Key, c.MoveCount())
	}

	store, err := resolveCommentStore(ctx, log, cfg, metrics)
	if err != nil {
		return fail(err)
	}

	reposet := wireRepos(store, log)
	serviceset := wireServices(log, reposet, metrics)
	handlerset := wireHandlers(log, serviceset, reg, store)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Catalog:      reg,
		Repos:        reposet,
		Services:     serviceset,
		Metrics:      metrics,
		server:       server,
		store:        store,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.server.Addr(), "comment_store", a.store.Mode)
		return a.server.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		a.Log.Info("HTTP server shutting down")
		return a.server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// Close releases the store and flushes telemetry. Safe to call more than once.
func (a *App) Close() {
	if a == nil {
		return
	}
	a.closeOnce.Do(a.close)
}

func (a *App) close() {
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout.Duration)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if err := a.store.Close(); err != nil {
		a.Log.Warn("comment store close failed", "error", err)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
