package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/nogi-trainer/internal/http/handlers"
	httpMW "github.com/yungbote/nogi-trainer/internal/http/middleware"
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	CommentHandler *httpH.CommentHandler
	CatalogHandler *httpH.CatalogHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.CommentHandler != nil {
			api.GET("/comments/:pageId", cfg.CommentHandler.ListComments)
			api.POST("/comments", cfg.CommentHandler.CreateComment)
		}

		if cfg.CatalogHandler != nil {
			api.GET("/catalog", cfg.CatalogHandler.ListCategories)
			api.GET("/catalog/:key", cfg.CatalogHandler.GetCategory)
		}
	}

	return r
}
