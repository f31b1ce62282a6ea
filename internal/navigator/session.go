package navigator

import (
	"fmt"
	"strings"

	"github.com/yungbote/nogi-trainer/internal/platform/logger"
)

type Mode string

const (
	ModeLearn Mode = "learn"
	ModeQuiz  Mode = "quiz"
)

// NameStore persists the display name between runs.
type NameStore interface {
	Load() (string, error)
	Save(name string) error
}

// Session is the per-user context: display name, mode and the name prompt.
type Session struct {
	log   *logger.Logger
	store NameStore

	userName   string
	mode       Mode
	promptOpen bool
	pending    *PendingAction
}

// NewSession restores a previously saved name. A store that fails to load is
// treated as having no name.
func NewSession(log *logger.Logger, store NameStore) *Session {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Session{
		log:   log.With("component", "Session"),
		store: store,
		mode:  ModeLearn,
	}
	if store != nil {
		name, err := store.Load()
		if err != nil {
			s.log.Warn("load saved name failed", "error", err)
		}
		s.userName = strings.TrimSpace(name)
	}
	return s
}

func (s *Session) UserName() string { return s.userName }

func (s *Session) HasName() bool { return s.userName != "" }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) SetMode(m Mode) error {
	switch m {
	case ModeLearn, ModeQuiz:
		s.mode = m
		return nil
	default:
		return fmt.Errorf("unknown mode %q", m)
	}
}

func (s *Session) ToggleMode() Mode {
	if s.mode == ModeQuiz {
		s.mode = ModeLearn
	} else {
		s.mode = ModeQuiz
	}
	return s.mode
}

func (s *Session) PromptOpen() bool { return s.promptOpen }
