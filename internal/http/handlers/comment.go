package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/http/response"
	"github.com/yungbote/nogi-trainer/internal/services"
)

type CommentHandler struct {
	comments services.CommentService
}

func NewCommentHandler(comments services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GET /api/comments/:pageId
func (h *CommentHandler) ListComments(c *gin.Context) {
	rows, err := h.comments.List(c.Request.Context(), c.Param("pageId"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/comments
//
// Missing fields are stored as empty strings. Only a body that is not JSON is
// rejected.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var in types.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		response.RespondError(c, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	row, err := h.comments.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondCreated(c, row)
}
