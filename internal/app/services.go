package app

import (
	"github.com/yungbote/nogi-trainer/internal/observability"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
	"github.com/yungbote/nogi-trainer/internal/services"
)

type Services struct {
	Comment services.CommentService
}

func wireServices(log *logger.Logger, repos Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		Comment: services.NewCommentService(log, repos.Comment, metrics),
	}
}
