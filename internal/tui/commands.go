package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/navigator"
)

// CommentWorkflow is the network side of the move page.
type CommentWorkflow interface {
	Load(ctx context.Context, pageID string) []types.Comment
	Post(ctx context.Context, req navigator.PostRequest) ([]types.Comment, error)
}

type commentsLoadedMsg struct {
	pageID   string
	comments []types.Comment
}

type commentPostedMsg struct {
	pageID   string
	visit    int
	comments []types.Comment
	err      error
}

const requestTimeout = 15 * time.Second

func loadCommentsCmd(wf CommentWorkflow, pageID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return commentsLoadedMsg{pageID: pageID, comments: wf.Load(ctx, pageID)}
	}
}

// postCommentCmd tags the result with the visit it was sent from, so a late
// reply cannot touch the draft of a page opened since.
func postCommentCmd(wf CommentWorkflow, req navigator.PostRequest, visit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		comments, err := wf.Post(ctx, req)
		return commentPostedMsg{pageID: req.PageID, visit: visit, comments: comments, err: err}
	}
}
