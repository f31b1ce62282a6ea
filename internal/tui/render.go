package tui

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns a Markdown document into terminal output.
type Renderer interface {
	Render(in string) (string, error)
}

// NewMarkdownRenderer returns a glamour renderer wrapped to width.
func NewMarkdownRenderer(width int) (Renderer, error) {
	if width <= 0 {
		width = 80
	}
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
}

// PlainRenderer passes Markdown through unchanged.
type PlainRenderer struct{}

func (PlainRenderer) Render(in string) (string, error) { return in, nil }
