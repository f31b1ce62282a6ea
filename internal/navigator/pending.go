package navigator

import "strings"

// PendingAction is a comment post captured while the name prompt is open.
type PendingAction struct {
	PageID string
	Text   string
}

// PostRequest is a comment ready to send.
type PostRequest struct {
	PageID   string
	UserName string
	Text     string
}

// RequestPost turns a draft into a PostRequest when the name is known.
// Otherwise it opens the name prompt and holds the draft as the pending
// action; a later request replaces it. Blank drafts are ignored. The text is
// sent as typed.
func (s *Session) RequestPost(pageID, text string) (PostRequest, bool) {
	if strings.TrimSpace(text) == "" {
		return PostRequest{}, false
	}
	if s.HasName() {
		return PostRequest{PageID: pageID, UserName: s.userName, Text: text}, true
	}
	s.pending = &PendingAction{PageID: pageID, Text: text}
	s.promptOpen = true
	return PostRequest{}, false
}

// Pending reports the action held by the open prompt.
func (s *Session) Pending() (PendingAction, bool) {
	if s.pending == nil {
		return PendingAction{}, false
	}
	return *s.pending, true
}

// SubmitName stores a trimmed name, closes the prompt and hands back the
// pending action, if any, stamped with that name. The pending action is
// released exactly once. A blank name keeps the prompt open.
func (s *Session) SubmitName(name string) (PostRequest, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return PostRequest{}, false, ErrBlankName
	}
	s.userName = name
	if s.store != nil {
		if err := s.store.Save(name); err != nil {
			s.log.Warn("save name failed", "error", err)
		}
	}
	s.promptOpen = false

	p := s.pending
	s.pending = nil
	if p == nil {
		return PostRequest{}, false, nil
	}
	return PostRequest{PageID: p.PageID, UserName: name, Text: p.Text}, true, nil
}

// PromptForName opens the prompt without a pending action.
func (s *Session) PromptForName() {
	s.promptOpen = true
}

// DismissPrompt closes the prompt and drops the pending action unrun.
func (s *Session) DismissPrompt() {
	s.promptOpen = false
	s.pending = nil
}
