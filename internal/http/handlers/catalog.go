package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	"github.com/yungbote/nogi-trainer/internal/http/response"
)

type CatalogHandler struct {
	reg *catalog.Registry
}

func NewCatalogHandler(reg *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{reg: reg}
}

// GET /api/catalog
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	response.RespondOK(c, h.reg.Summaries())
}

// GET /api/catalog/:key
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	cat, ok := h.reg.Category(c.Param("key"))
	if !ok {
		response.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}
	response.RespondOK(c, gin.H{
		"key":         cat.Key,
		"title":       cat.Title,
		"description": cat.Description,
		"icon":        cat.Icon,
		"moveCount":   cat.MoveCount(),
		"quizCount":   cat.QuizCount,
		"moves":       cat.Moves,
	})
}
