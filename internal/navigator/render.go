package navigator

import (
	"fmt"
	"strings"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	types "github.com/yungbote/nogi-trainer/internal/domain"
)

const (
	AppTitle   = "Nogi BJJ Trainer"
	AppTagline = "Learn, drill, and test yourself on nogi submissions and positions"
)

// CommentsView is what the move page knows about its thread.
type CommentsView struct {
	Loading  bool
	Comments []types.Comment
}

// RenderHome lists every section in declared order, numbered for selection.
func RenderHome(reg *catalog.Registry, sess *Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", AppTitle, AppTagline)
	if sess != nil {
		if sess.HasName() {
			fmt.Fprintf(&b, "Welcome, **%s**\n\n", EscapeMarkdown(sess.UserName()))
		}
		learn, quiz := "Learn", "Quiz"
		if sess.Mode() == ModeQuiz {
			quiz = "**[Quiz]**"
		} else {
			learn = "**[Learn]**"
		}
		fmt.Fprintf(&b, "Mode: %s · %s\n\n", learn, quiz)
	}
	for i, c := range reg.Categories() {
		fmt.Fprintf(&b, "## %d. %s %s\n\n", i+1, c.Icon, c.Title)
		fmt.Fprintf(&b, "%s\n\n", c.Description)
		fmt.Fprintf(&b, "%d moves • %d quizzes\n\n", c.MoveCount(), c.QuizCount)
	}
	return b.String()
}

// RenderSection lists the moves of one category in declared order.
func RenderSection(c types.Category) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", c.Title, c.Description)
	for i, m := range c.Moves {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, m.Name)
		fmt.Fprintf(&b, "%s\n\n", m.Tagline)
		fmt.Fprintf(&b, "`%s`\n\n", m.Level)
	}
	return b.String()
}

// RenderMove renders the full move detail followed by its comment thread.
func RenderMove(m types.Move, cv CommentsView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	fmt.Fprintf(&b, "`%s` `%s`\n\n", m.Level, m.Category)

	fmt.Fprintf(&b, "## Overview\n\n%s\n\n", m.Overview)

	b.WriteString("## Key Steps\n\n")
	for i, s := range m.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("\n## Key Cues\n\n")
	for _, c := range m.KeyCues {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\n## Common Mistakes\n\n")
	for _, mm := range m.Mistakes {
		fmt.Fprintf(&b, "- ✗ %s\n", mm)
	}
	fmt.Fprintf(&b, "\n## ⚠️ Safety\n\n> %s\n\n", m.Safety)

	b.WriteString(RenderComments(cv))
	return b.String()
}

func RenderComments(cv CommentsView) string {
	var b strings.Builder
	b.WriteString("## Comments & Questions\n\n")
	switch {
	case cv.Loading:
		b.WriteString("Loading comments...\n")
	case len(cv.Comments) == 0:
		b.WriteString("No comments yet. Be the first to comment!\n")
	default:
		for _, c := range cv.Comments {
			fmt.Fprintf(&b, "**%s** · %s\n\n", EscapeMarkdown(c.UserName), c.Timestamp.Local().Format("Jan 2, 2006"))
			fmt.Fprintf(&b, "%s\n\n---\n\n", escapeBlock(c.Text))
		}
	}
	return b.String()
}

// EscapeMarkdown backslash-escapes every ASCII punctuation character so user
// text renders literally.
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 && isASCIIPunct(byte(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func escapeBlock(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = EscapeMarkdown(strings.TrimSpace(l))
	}
	return strings.Join(lines, "  \n")
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
