package domain

import (
	"github.com/yungbote/nogi-trainer/internal/domain/catalog"
	"github.com/yungbote/nogi-trainer/internal/domain/comment"
)

type Comment = comment.Comment
type CommentInput = comment.Input

type Category = catalog.Category
type Move = catalog.Move
type Level = catalog.Level

const (
	LevelBeginner     = catalog.LevelBeginner
	LevelIntermediate = catalog.LevelIntermediate
	LevelAdvanced     = catalog.LevelAdvanced
)
