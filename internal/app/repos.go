package app

import (
	"github.com/yungbote/nogi-trainer/internal/data/repos"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type Repos struct {
	Comment repos.CommentRepo
}

func wireRepos(store *commentStore, log *logger.Logger) Repos {
	log.Info("Wiring repos...", "comment_store", store.Mode)
	return Repos{
		Comment: store.Repo,
	}
}
