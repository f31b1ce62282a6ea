package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/nogi-trainer/internal/catalog"
)

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(catalog.MustDefault())
	r := gin.New()
	r.GET("/api/catalog", h.ListCategories)
	r.GET("/api/catalog/:key", h.GetCategory)
	return r
}

func TestListCategories(t *testing.T) {
	r := newCatalogRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var got []catalog.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 || got[0].Key != "chokes" || got[0].MoveCount != 2 {
		t.Fatalf("unexpected summaries: %#v", got)
	}
}

func TestGetCategory(t *testing.T) {
	r := newCatalogRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/legLocks", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	var body struct {
		Key   string `json:"key"`
		Moves []struct {
			ID string `json:"id"`
		} `json:"moves"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Key != "legLocks" || len(body.Moves) != 1 || body.Moves[0].ID != "straightAnkleLock" {
		t.Fatalf("unexpected category: %#v", body)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/catalog/wristLocks", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown key status=%d", rec.Code)
	}
}
