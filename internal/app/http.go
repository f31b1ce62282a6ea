package app

import (
	"github.com/yungbote/nogi-trainer/internal/catalog"
	"github.com/yungbote/nogi-trainer/internal/http"
	httpH "github.com/yungbote/nogi-trainer/internal/http/handlers"
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type Handlers struct {
	Health  *httpH.HealthHandler
	Comment *httpH.CommentHandler
	Catalog *httpH.CatalogHandler
}

func wireHandlers(log *logger.Logger, services Services, reg *catalog.Registry, store httpH.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(store),
		Comment: httpH.NewCommentHandler(services.Comment),
		Catalog: httpH.NewCatalogHandler(reg),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		ServiceName:    serviceName,
		CORSOrigins:    cfg.HTTP.CORSAllowOrigins,
		CommentHandler: handlers.Comment,
		CatalogHandler: handlers.Catalog,
		HealthHandler:  handlers.Health,
	}, http.ServerConfig{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout.Duration,
		ReadTimeout:       cfg.HTTP.ReadTimeout.Duration,
		WriteTimeout:      cfg.HTTP.WriteTimeout.Duration,
		IdleTimeout:       cfg.HTTP.IdleTimeout.Duration,
	})
}
