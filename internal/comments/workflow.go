package comments

import (
	"context"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/navigator"
)

// Workflow runs the create-then-refresh round trip of the move page.
type Workflow struct {
	client *Client
}

func NewWorkflow(client *Client) *Workflow {
	return &Workflow{client: client}
}

func (w *Workflow) Load(ctx context.Context, pageID string) []types.Comment {
	return w.client.List(ctx, pageID)
}

// Post creates the comment and, only once that succeeds, lists the page
// again. On failure the thread is not refreshed and the error is returned so
// the draft can be kept.
func (w *Workflow) Post(ctx context.Context, req navigator.PostRequest) ([]types.Comment, error) {
	if _, err := w.client.Create(ctx, req.PageID, req.UserName, req.Text); err != nil {
		return nil, err
	}
	return w.client.List(ctx, req.PageID), nil
}
