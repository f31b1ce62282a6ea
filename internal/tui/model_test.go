package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	types "github.com/yungbote/nogi-trainer/internal/domain"
	"github.com/yungbote/nogi-trainer/internal/navigator"
)

type fakeWorkflow struct {
	mu      sync.Mutex
	loads   []string
	posts   []navigator.PostRequest
	thread  []types.Comment
	postErr error
}

func (f *fakeWorkflow) Load(_ context.Context, pageID string) []types.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads = append(f.loads, pageID)
	return append([]types.Comment(nil), f.thread...)
}

func (f *fakeWorkflow) Post(_ context.Context, req navigator.PostRequest) ([]types.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, req)
	if f.postErr != nil {
		return nil, f.postErr
	}
	f.thread = append([]types.Comment{{PageID: req.PageID, UserName: req.UserName, Text: req.Text}}, f.thread...)
	return append([]types.Comment(nil), f.thread...), nil
}

type memStore struct{ name string }

func (m *memStore) Load() (string, error) { return m.name, nil }
func (m *memStore) Save(n string) error   { m.name = n; return nil }

func newModel(t *testing.T, savedName string) (Model, *fakeWorkflow) {
	t.Helper()
	wf := &fakeWorkflow{}
	m := New(Options{
		Navigator: navigator.New(catalog.MustDefault()),
		Session:   navigator.NewSession(nil, &memStore{name: savedName}),
		Workflow:  wf,
		Renderer:  PlainRenderer{},
	})
	return m, wf
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// openMove goes home -> chokes -> rnc and delivers the comment load.
func openMove(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, runes("1"))
	require.Equal(t, navigator.PageSection, m.nav.State().Page())
	m, cmd := send(t, m, runes("1"))
	require.Equal(t, navigator.PageMove, m.nav.State().Page())
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	return m
}

func TestHomeShowsSections(t *testing.T) {
	m, _ := newModel(t, "")
	assert.Contains(t, m.View(), navigator.AppTitle)
	assert.Contains(t, m.rendered, "Chokes")
	assert.Contains(t, m.rendered, "Leg Locks")
}

func TestNavigateToMoveLoadsComments(t *testing.T) {
	m, wf := newModel(t, "Ana")
	m = openMove(t, m)

	assert.Equal(t, []string{"rnc"}, wf.loads)
	assert.Contains(t, m.View(), "Rear Naked Choke")
	assert.Contains(t, m.rendered, "No comments yet. Be the first to comment!")

	m, _ = send(t, m, runes("b"))
	assert.Equal(t, navigator.PageSection, m.nav.State().Page())
	m, _ = send(t, m, runes("h"))
	assert.Equal(t, navigator.PageHome, m.nav.State().Page())
}

func TestStaleCommentLoadIsIgnored(t *testing.T) {
	m, _ := newModel(t, "Ana")
	m = openMove(t, m)
	m, _ = send(t, m, commentsLoadedMsg{pageID: "kimura", comments: []types.Comment{{Text: "wrong page"}}})
	assert.NotContains(t, m.rendered, "wrong page")
}

func TestPostWithKnownName(t *testing.T) {
	m, wf := newModel(t, "Ana")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	require.True(t, m.composing)
	m, _ = send(t, m, runes("chin down"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	require.Len(t, wf.posts, 1)
	assert.Equal(t, navigator.PostRequest{PageID: "rnc", UserName: "Ana", Text: "chin down"}, wf.posts[0])
	assert.Empty(t, m.draft.Value())
	assert.Contains(t, m.rendered, "chin down")
}

func TestPostWithoutNameWaitsForPrompt(t *testing.T) {
	m, wf := newModel(t, "")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("grip question"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.sess.PromptOpen())
	assert.Empty(t, wf.posts)
	assert.Contains(t, m.View(), "Please enter your name")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "blank name keeps the prompt open")
	assert.True(t, m.sess.PromptOpen())

	m, _ = send(t, m, runes("Ben"))
	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.False(t, m.sess.PromptOpen())
	m, _ = send(t, m, cmd())

	require.Len(t, wf.posts, 1)
	assert.Equal(t, navigator.PostRequest{PageID: "rnc", UserName: "Ben", Text: "grip question"}, wf.posts[0])
	assert.Equal(t, "Ben", m.sess.UserName())
}

func TestDismissedPromptNeverPosts(t *testing.T) {
	m, wf := newModel(t, "")
	m = openMove(t, m)
	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("lost"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.sess.PromptOpen())
	assert.Empty(t, wf.posts)
}

func TestFailedPostKeepsDraft(t *testing.T) {
	m, wf := newModel(t, "Ana")
	wf.postErr = errors.New("offline")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("keep me"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())

	assert.Equal(t, "keep me", m.draft.Value())
	assert.True(t, strings.Contains(m.View(), "Could not post comment"))
}

func TestModeToggleOnHome(t *testing.T) {
	m, _ := newModel(t, "")
	m, _ = send(t, m, runes("m"))
	assert.Equal(t, navigator.ModeQuiz, m.sess.Mode())
	assert.Contains(t, m.rendered, "**[Quiz]**")
}

func TestDraftDoesNotFollowToAnotherMove(t *testing.T) {
	m, wf := newModel(t, "Ana")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("question about rnc"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, runes("b"))
	m, cmd := send(t, m, runes("2"))
	require.Equal(t, "guillotine", m.nav.State().PageID())
	m, _ = send(t, m, cmd())

	assert.Empty(t, m.draft.Value())
	m, _ = send(t, m, runes("c"))
	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Empty(t, wf.posts)
}

func TestLatePostReplyKeepsDraftOnNewMove(t *testing.T) {
	m, wf := newModel(t, "Ana")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("rnc question"))
	m, post := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, post)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, runes("b"))
	m, load := send(t, m, runes("2"))
	m, _ = send(t, m, load())
	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("new guillotine draft"))

	m, _ = send(t, m, post())

	require.Len(t, wf.posts, 1)
	assert.Equal(t, "rnc", wf.posts[0].PageID)
	assert.Equal(t, "new guillotine draft", m.draft.Value())
	assert.NotContains(t, m.rendered, "rnc question")
}

func TestLatePostReplyAfterReturningKeepsNewDraft(t *testing.T) {
	m, _ := newModel(t, "Ana")
	m = openMove(t, m)

	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("first"))
	m, post := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, post)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, runes("b"))
	m, load := send(t, m, runes("1"))
	require.Equal(t, "rnc", m.nav.State().PageID())
	m, _ = send(t, m, load())
	m, _ = send(t, m, runes("c"))
	m, _ = send(t, m, runes("second"))

	m, _ = send(t, m, post())
	assert.Equal(t, "second", m.draft.Value())
}
