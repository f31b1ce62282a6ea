package catalog

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/nogi-trainer/internal/domain"
)

//go:embed catalog.yaml
var catalogFS embed.FS

type document struct {
	Categories []types.Category `yaml:"categories"`
}

type moveRef struct {
	category int
	move     int
}

// Registry is the read-only technique catalog. Every accessor returns copies,
// so callers can never mutate the registry.
type Registry struct {
	categories []types.Category
	byKey      map[string]int
	moves      map[string]moveRef
}

// CountMismatch reports a category whose hand-entered move count disagrees
// with the moves it actually declares.
type CountMismatch struct {
	Key      string
	Declared int
	Actual   int
}

type Summary struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	MoveCount   int      `json:"moveCount"`
	QuizCount   int      `json:"quizCount"`
	MoveIDs     []string `json:"moveIds"`
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry built from the embedded catalog. It is built
// once per process.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		raw, err := catalogFS.ReadFile("catalog.yaml")
		if err != nil {
			defaultErr = fmt.Errorf("read embedded catalog: %w", err)
			return
		}
		defaultReg, defaultErr = Parse(raw)
	})
	return defaultReg, defaultErr
}

func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}

func Parse(raw []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Categories)
}

func New(categories []types.Category) (*Registry, error) {
	if len(categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}
	r := &Registry{
		categories: make([]types.Category, 0, len(categories)),
		byKey:      make(map[string]int, len(categories)),
		moves:      map[string]moveRef{},
	}
	for ci, c := range categories {
		key := strings.TrimSpace(c.Key)
		if key == "" {
			return nil, fmt.Errorf("category %d missing key", ci)
		}
		if _, dup := r.byKey[key]; dup {
			return nil, fmt.Errorf("duplicate category key %q", key)
		}
		c = c.Clone()
		c.Key = key
		for mi, m := range c.Moves {
			id := strings.TrimSpace(m.ID)
			if id == "" {
				return nil, fmt.Errorf("category %q move %d missing id", key, mi)
			}
			if _, dup := r.moves[id]; dup {
				return nil, fmt.Errorf("duplicate move id %q", id)
			}
			if strings.TrimSpace(m.Name) == "" {
				return nil, fmt.Errorf("move %q missing name", id)
			}
			if !m.Level.Valid() {
				return nil, fmt.Errorf("move %q has unknown level %q", id, m.Level)
			}
			c.Moves[mi].ID = id
			r.moves[id] = moveRef{category: ci, move: mi}
		}
		r.byKey[key] = ci
		r.categories = append(r.categories, c)
	}
	return r, nil
}

// Categories returns every category in declared order.
func (r *Registry) Categories() []types.Category {
	out := make([]types.Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = c.Clone()
	}
	return out
}

func (r *Registry) Category(key string) (types.Category, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return types.Category{}, false
	}
	return r.categories[i].Clone(), true
}

// MovesIn returns the moves of one category in declared order.
func (r *Registry) MovesIn(key string) ([]types.Move, bool) {
	c, ok := r.Category(key)
	if !ok {
		return nil, false
	}
	return c.Moves, true
}

func (r *Registry) Move(id string) (types.Move, bool) {
	ref, ok := r.moves[id]
	if !ok {
		return types.Move{}, false
	}
	return r.categories[ref.category].Moves[ref.move].Clone(), true
}

func (r *Registry) HasMove(id string) bool {
	_, ok := r.moves[id]
	return ok
}

// SectionOf returns the key of the category that declares the move.
func (r *Registry) SectionOf(moveID string) (string, bool) {
	ref, ok := r.moves[moveID]
	if !ok {
		return "", false
	}
	return r.categories[ref.category].Key, true
}

func (r *Registry) Summaries() []Summary {
	out := make([]Summary, 0, len(r.categories))
	for _, c := range r.categories {
		ids := make([]string, 0, len(c.Moves))
		for _, m := range c.Moves {
			ids = append(ids, m.ID)
		}
		out = append(out, Summary{
			Key:         c.Key,
			Title:       c.Title,
			Description: c.Description,
			Icon:        c.Icon,
			MoveCount:   c.MoveCount(),
			QuizCount:   c.QuizCount,
			MoveIDs:     ids,
		})
	}
	return out
}

// Validate reports categories whose declared move count is stale. The
// registry stays usable; MoveCount is always derived from the moves.
func (r *Registry) Validate() []CountMismatch {
	var out []CountMismatch
	for _, c := range r.categories {
		if c.DeclaredMoveCount != c.MoveCount() {
			out = append(out, CountMismatch{Key: c.Key, Declared: c.DeclaredMoveCount, Actual: c.MoveCount()})
		}
	}
	return out
}
