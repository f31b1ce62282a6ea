package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

func ParseLevel(raw string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "beginner":
		return LevelBeginner, nil
	case "intermediate":
		return LevelIntermediate, nil
	case "advanced":
		return LevelAdvanced, nil
	default:
		return "", fmt.Errorf("unknown level %q", raw)
	}
}

// UnmarshalYAML accepts the level in any case, so "beginner" decodes as
// LevelBeginner.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseLevel(value.Value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

type Move struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Tagline  string   `yaml:"tagline" json:"tagline"`
	Category string   `yaml:"category" json:"category"`
	Level    Level    `yaml:"level" json:"level"`
	Overview string   `yaml:"overview" json:"overview"`
	Steps    []string `yaml:"steps" json:"steps"`
	KeyCues  []string `yaml:"keyCues" json:"keyCues"`
	Mistakes []string `yaml:"mistakes" json:"mistakes"`
	Safety   string   `yaml:"safety" json:"safety"`
}

func (m Move) Clone() Move {
	out := m
	out.Steps = append([]string(nil), m.Steps...)
	out.KeyCues = append([]string(nil), m.KeyCues...)
	out.Mistakes = append([]string(nil), m.Mistakes...)
	return out
}

type Category struct {
	Key         string `yaml:"key" json:"key"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	// DeclaredMoveCount is the hand-entered count; MoveCount is authoritative.
	DeclaredMoveCount int    `yaml:"moveCount" json:"declaredMoveCount"`
	QuizCount         int    `yaml:"quizCount" json:"quizCount"`
	Moves             []Move `yaml:"moves" json:"moves"`
}

func (c Category) MoveCount() int { return len(c.Moves) }

func (c Category) Clone() Category {
	out := c
	out.Moves = make([]Move, len(c.Moves))
	for i, m := range c.Moves {
		out.Moves[i] = m.Clone()
	}
	return out
}
