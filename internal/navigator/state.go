package navigator

import (
	"errors"
	"fmt"

	"github.com/yungbote/nogi-trainer/internal/catalog"
	types "github.com/yungbote/nogi-trainer/internal/domain"
)

var (
	ErrUnknownSection    = errors.New("unknown section")
	ErrUnknownMove       = errors.New("unknown move")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrBlankName         = errors.New("name must not be blank")
)

type Page string

const (
	PageHome    Page = "home"
	PageSection Page = "section"
	PageMove    Page = "move"
)

// State is the current view. The zero value is the home page. Section and
// move pages can only be reached through a Navigator, so a move page always
// carries a move and a section page always carries a section.
type State struct {
	page    Page
	section string
	move    *types.Move
}

func (s State) Page() Page {
	if s.page == "" {
		return PageHome
	}
	return s.page
}

func (s State) SectionKey() string { return s.section }

func (s State) Move() (types.Move, bool) {
	if s.move == nil {
		return types.Move{}, false
	}
	return s.move.Clone(), true
}

// PageID is the comment thread key of the current view, empty outside a
// move page.
func (s State) PageID() string {
	if s.move == nil {
		return ""
	}
	return s.move.ID
}

type Navigator struct {
	reg   *catalog.Registry
	state State
}

func New(reg *catalog.Registry) *Navigator {
	return &Navigator{reg: reg}
}

func (n *Navigator) State() State { return n.state }

func (n *Navigator) Registry() *catalog.Registry { return n.reg }

// SelectSection moves from home to a section. The state is left untouched on
// error.
func (n *Navigator) SelectSection(key string) error {
	if n.state.Page() != PageHome {
		return fmt.Errorf("%w: select section from %s", ErrInvalidTransition, n.state.Page())
	}
	if _, ok := n.reg.Category(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	n.state = State{page: PageSection, section: key}
	return nil
}

// SelectMove opens a move of the current section.
func (n *Navigator) SelectMove(id string) error {
	if n.state.Page() != PageSection {
		return fmt.Errorf("%w: select move from %s", ErrInvalidTransition, n.state.Page())
	}
	if !n.reg.HasMove(id) {
		return fmt.Errorf("%w: %q", ErrUnknownMove, id)
	}
	if owner, _ := n.reg.SectionOf(id); owner != n.state.section {
		return fmt.Errorf("%w: %q is not in section %q", ErrUnknownMove, id, n.state.section)
	}
	m, _ := n.reg.Move(id)
	n.state = State{page: PageMove, section: n.state.section, move: &m}
	return nil
}

// Back goes move to section, section to home, and stays on home.
func (n *Navigator) Back() {
	switch n.state.Page() {
	case PageMove:
		n.state = State{page: PageSection, section: n.state.section}
	default:
		n.state = State{}
	}
}

func (n *Navigator) Home() {
	n.state = State{}
}

// Moves lists the moves of the current section in declared order.
func (n *Navigator) Moves() []types.Move {
	if n.state.section == "" {
		return nil
	}
	moves, _ := n.reg.MovesIn(n.state.section)
	return moves
}
