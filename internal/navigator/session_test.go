package navigator

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNameStore struct {
	name    string
	saves   int
	loadErr error
	saveErr error
}

func (m *memNameStore) Load() (string, error) { return m.name, m.loadErr }

func (m *memNameStore) Save(name string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.name = name
	return nil
}

func TestSessionRestoresSavedName(t *testing.T) {
	s := NewSession(nil, &memNameStore{name: "  Ana \n"})
	assert.Equal(t, "Ana", s.UserName())
	assert.Equal(t, ModeLearn, s.Mode())

	s = NewSession(nil, &memNameStore{loadErr: errors.New("disk gone")})
	assert.False(t, s.HasName())
}

func TestRequestPostWithKnownName(t *testing.T) {
	s := NewSession(nil, &memNameStore{name: "Ana"})
	req, ok := s.RequestPost("armbar", "  hips up ")
	require.True(t, ok)
	assert.Equal(t, PostRequest{PageID: "armbar", UserName: "Ana", Text: "  hips up "}, req)
	assert.False(t, s.PromptOpen())
}

func TestRequestPostIgnoresBlankText(t *testing.T) {
	s := NewSession(nil, &memNameStore{})
	_, ok := s.RequestPost("armbar", " \n\t")
	assert.False(t, ok)
	assert.False(t, s.PromptOpen())
	_, pending := s.Pending()
	assert.False(t, pending)
}

func TestNamePromptReleasesPendingActionOnce(t *testing.T) {
	store := &memNameStore{}
	s := NewSession(nil, store)

	_, ok := s.RequestPost("rnc", "chin down?")
	require.False(t, ok)
	require.True(t, s.PromptOpen())
	p, held := s.Pending()
	require.True(t, held)
	assert.Equal(t, PendingAction{PageID: "rnc", Text: "chin down?"}, p)

	_, _, err := s.SubmitName("   ")
	assert.ErrorIs(t, err, ErrBlankName)
	assert.True(t, s.PromptOpen())
	assert.Zero(t, store.saves)

	req, run, err := s.SubmitName("  Ben ")
	require.NoError(t, err)
	require.True(t, run)
	assert.Equal(t, PostRequest{PageID: "rnc", UserName: "Ben", Text: "chin down?"}, req)
	assert.False(t, s.PromptOpen())
	assert.Equal(t, "Ben", store.name)

	_, run, err = s.SubmitName("Ben")
	require.NoError(t, err)
	assert.False(t, run)
}

func TestLaterDraftReplacesPending(t *testing.T) {
	s := NewSession(nil, &memNameStore{})
	s.RequestPost("rnc", "first")
	s.RequestPost("rnc", "second")
	req, run, err := s.SubmitName("Ana")
	require.NoError(t, err)
	require.True(t, run)
	assert.Equal(t, "second", req.Text)
}

func TestDismissPromptDropsPending(t *testing.T) {
	s := NewSession(nil, &memNameStore{})
	s.RequestPost("kimura", "grip?")
	s.DismissPrompt()
	assert.False(t, s.PromptOpen())
	assert.False(t, s.HasName())

	s.PromptForName()
	_, run, err := s.SubmitName("Ana")
	require.NoError(t, err)
	assert.False(t, run)
}

func TestSaveFailureKeepsNameInSession(t *testing.T) {
	s := NewSession(nil, &memNameStore{saveErr: errors.New("read-only")})
	s.RequestPost("rnc", "q")
	req, run, err := s.SubmitName("Ana")
	require.NoError(t, err)
	require.True(t, run)
	assert.Equal(t, "Ana", req.UserName)
	assert.Equal(t, "Ana", s.UserName())
}

func TestModeToggle(t *testing.T) {
	s := NewSession(nil, nil)
	assert.Equal(t, ModeQuiz, s.ToggleMode())
	assert.Equal(t, ModeLearn, s.ToggleMode())
	require.NoError(t, s.SetMode(ModeQuiz))
	assert.Error(t, s.SetMode("spar"))
	assert.Equal(t, ModeQuiz, s.Mode())
}

func TestFileNameStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", NameKey)
	store := NewFileNameStore(path)

	name, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, store.Save("Ana"))
	name, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)

	s := NewSession(nil, store)
	assert.Equal(t, "Ana", s.UserName())
}
