package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yungbote/nogi-trainer/internal/navigator"
	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type Options struct {
	Navigator *navigator.Navigator
	Session   *navigator.Session
	Workflow  CommentWorkflow
	Renderer  Renderer
	Log       *logger.Logger
}

type Model struct {
	nav      *navigator.Navigator
	sess     *navigator.Session
	wf       CommentWorkflow
	renderer Renderer
	log      *logger.Logger
	styles   Styles

	viewport  viewport.Model
	draft     textarea.Model
	nameInput textinput.Model
	composing bool
	// visit changes whenever the open page changes; a draft and its posts
	// belong to one visit.
	visit     int
	draftPage string

	comments  navigator.CommentsView
	rendered  string
	status    string
	statusErr bool
	width     int
	height    int
}

func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}
	r := opts.Renderer
	if r == nil {
		r = PlainRenderer{}
	}

	ta := textarea.New()
	ta.Placeholder = "Ask a question or share feedback..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(78)
	ta.CharLimit = 0

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.Prompt = "│ "
	ti.CharLimit = 128
	ti.Width = 40

	m := Model{
		nav:       opts.Navigator,
		sess:      opts.Session,
		wf:        opts.Workflow,
		renderer:  r,
		log:       log.With("component", "TUI"),
		styles:    DefaultStyles(),
		viewport:  viewport.New(80, 20),
		draft:     ta,
		nameInput: ti,
		width:     80,
		height:    24,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.sess.PromptOpen() {
		return textinput.Blink
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case commentsLoadedMsg:
		if msg.pageID != m.nav.State().PageID() {
			return m, nil
		}
		m.comments = navigator.CommentsView{Comments: msg.comments}
		m.refresh()
		return m, nil

	case commentPostedMsg:
		current := msg.visit == m.visit && msg.pageID == m.nav.State().PageID()
		if msg.err != nil {
			if current {
				m.setError("Could not post comment. Your draft was kept.")
			} else {
				m.setError("Could not post comment.")
			}
			return m, nil
		}
		m.setStatus("Comment posted.")
		if current {
			m.draft.Reset()
			m.comments = navigator.CommentsView{Comments: msg.comments}
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.sess.PromptOpen() {
			return m.updatePrompt(msg)
		}
		if m.composing {
			return m.updateDraft(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sess.DismissPrompt()
		m.nameInput.Blur()
		m.nameInput.Reset()
		m.refresh()
		return m, nil
	case "enter":
		req, run, err := m.sess.SubmitName(m.nameInput.Value())
		if errors.Is(err, navigator.ErrBlankName) {
			return m, nil
		}
		m.nameInput.Blur()
		m.nameInput.Reset()
		m.refresh()
		if run {
			return m, postCommentCmd(m.wf, req, m.visit)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateDraft(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.composing = false
		m.draft.Blur()
		return m, nil
	case "ctrl+s":
		req, ready := m.sess.RequestPost(m.nav.State().PageID(), m.draft.Value())
		if ready {
			return m, postCommentCmd(m.wf, req, m.visit)
		}
		if m.sess.PromptOpen() {
			m.draft.Blur()
			m.composing = false
			return m, m.nameInput.Focus()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.nav.State()
	key := msg.String()

	switch key {
	case "q":
		return m, tea.Quit
	case "h", "home":
		m.nav.Home()
		m.afterNavigate()
		return m, nil
	case "esc", "b", "backspace":
		m.nav.Back()
		m.afterNavigate()
		return m, nil
	}

	switch st.Page() {
	case navigator.PageHome:
		if key == "m" {
			m.sess.ToggleMode()
			m.refresh()
			return m, nil
		}
		if key == "n" {
			m.sess.PromptForName()
			m.refresh()
			return m, m.nameInput.Focus()
		}
		if i, ok := digit(key); ok {
			cats := m.nav.Registry().Categories()
			if i < len(cats) {
				if err := m.nav.SelectSection(cats[i].Key); err != nil {
					m.setError(err.Error())
					return m, nil
				}
				m.afterNavigate()
			}
			return m, nil
		}
	case navigator.PageSection:
		if i, ok := digit(key); ok {
			moves := m.nav.Moves()
			if i < len(moves) {
				if err := m.nav.SelectMove(moves[i].ID); err != nil {
					m.setError(err.Error())
					return m, nil
				}
				m.afterNavigate()
				return m, loadCommentsCmd(m.wf, moves[i].ID)
			}
			return m, nil
		}
	case navigator.PageMove:
		if key == "c" || key == "tab" {
			m.composing = true
			return m, m.draft.Focus()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) afterNavigate() {
	m.status, m.statusErr = "", false
	m.composing = false
	m.draft.Blur()
	if id := m.nav.State().PageID(); id != m.draftPage {
		m.draft.Reset()
		m.draftPage = id
		m.visit++
	}
	if m.nav.State().Page() == navigator.PageMove {
		m.comments = navigator.CommentsView{Loading: true}
	} else {
		m.comments = navigator.CommentsView{}
	}
	m.refresh()
	m.viewport.GotoTop()
}

func (m *Model) setStatus(s string) { m.status, m.statusErr = s, false }

func (m *Model) setError(s string) { m.status, m.statusErr = s, true }

func (m *Model) layout() {
	w := m.width
	if w <= 0 {
		w = 80
	}
	// header, help and status lines, plus the draft box on move pages
	reserved := 3
	if m.nav.State().Page() == navigator.PageMove {
		reserved += m.draft.Height() + 2
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.viewport.Width = w
	m.viewport.Height = h
	m.draft.SetWidth(w - 2)
}

// refresh re-renders the current page into the viewport.
func (m *Model) refresh() {
	m.layout()
	var md string
	st := m.nav.State()
	switch st.Page() {
	case navigator.PageSection:
		c, _ := m.nav.Registry().Category(st.SectionKey())
		md = navigator.RenderSection(c)
	case navigator.PageMove:
		mv, _ := st.Move()
		md = navigator.RenderMove(mv, m.comments)
	default:
		md = navigator.RenderHome(m.nav.Registry(), m.sess)
	}
	out, err := m.renderer.Render(md)
	if err != nil {
		m.log.Warn("markdown render failed", "error", err)
		out = md
	}
	m.rendered = out
	m.viewport.SetContent(out)
}

func (m Model) View() string {
	var b strings.Builder

	header := m.styles.Header.Render(navigator.AppTitle)
	if m.sess.HasName() {
		header += "  " + m.styles.Welcome.Render("Welcome, "+m.sess.UserName())
	}
	b.WriteString(header + "\n")

	if m.sess.PromptOpen() {
		b.WriteString(m.promptView())
		return b.String()
	}

	b.WriteString(m.viewport.View() + "\n")
	if m.nav.State().Page() == navigator.PageMove {
		b.WriteString(m.draft.View() + "\n")
	}
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status) + "\n")
		} else {
			b.WriteString(m.styles.Status.Render(m.status) + "\n")
		}
	}
	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) promptView() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.PromptTitle.Render("Welcome to "+navigator.AppTitle),
		"",
		"Please enter your name to get started:",
		"",
		m.nameInput.View(),
		"",
		m.styles.Help.Render("enter: start training"),
	)
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, m.styles.PromptBox.Render(body))
}

func (m Model) helpLine() string {
	switch m.nav.State().Page() {
	case navigator.PageSection:
		return "1-9: open move · b: back · h: home · q: quit"
	case navigator.PageMove:
		if m.composing {
			return "ctrl+s: post comment · esc: stop editing"
		}
		return "c: write comment · ↑/↓: scroll · b: back to section · h: home · q: quit"
	default:
		return fmt.Sprintf("1-9: open section · m: mode (%s) · n: set name · q: quit", m.sess.Mode())
	}
}

func digit(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
