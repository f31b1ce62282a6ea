package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/nogi-trainer/internal/domain"
)

func TestDefaultCatalogDeclaredOrder(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	var keys []string
	for _, c := range r.Categories() {
		keys = append(keys, c.Key)
	}
	if diff := cmp.Diff([]string{"chokes", "armLocks", "legLocks"}, keys); diff != "" {
		t.Fatalf("category order mismatch (-want +got):\n%s", diff)
	}

	want := map[string][]string{
		"chokes":   {"rnc", "guillotine"},
		"armLocks": {"armbar", "kimura"},
		"legLocks": {"straightAnkleLock"},
	}
	for key, ids := range want {
		moves, ok := r.MovesIn(key)
		require.True(t, ok, key)
		var got []string
		for _, m := range moves {
			got = append(got, m.ID)
		}
		if diff := cmp.Diff(ids, got); diff != "" {
			t.Fatalf("%s moves (-want +got):\n%s", key, diff)
		}
	}
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestRegistryReturnsCopies(t *testing.T) {
	r := MustDefault()

	m, ok := r.Move("armbar")
	require.True(t, ok)
	m.Steps[0] = "mutated"
	m.Name = "mutated"

	again, _ := r.Move("armbar")
	assert.Equal(t, "Armbar", again.Name)
	assert.Equal(t, "Control the arm you want to attack", again.Steps[0])

	cats := r.Categories()
	cats[0].Moves[0].KeyCues[0] = "mutated"
	fresh, _ := r.Category("chokes")
	assert.Equal(t, "Keep your chest tight to their back", fresh.Moves[0].KeyCues[0])
}

func TestLookups(t *testing.T) {
	r := MustDefault()

	assert.True(t, r.HasMove("kimura"))
	assert.False(t, r.HasMove("heelHook"))

	key, ok := r.SectionOf("straightAnkleLock")
	require.True(t, ok)
	assert.Equal(t, "legLocks", key)

	_, ok = r.Category("takedowns")
	assert.False(t, ok)
	_, ok = r.MovesIn("takedowns")
	assert.False(t, ok)
}

func TestMoveCountIsDerivedAndMismatchReported(t *testing.T) {
	r := MustDefault()

	c, ok := r.Category("chokes")
	require.True(t, ok)
	assert.Equal(t, 2, c.MoveCount())
	assert.Equal(t, 5, c.DeclaredMoveCount)
	assert.Equal(t, 2, c.QuizCount)

	got := r.Validate()
	want := []CountMismatch{
		{Key: "chokes", Declared: 5, Actual: 2},
		{Key: "armLocks", Declared: 4, Actual: 2},
		{Key: "legLocks", Declared: 3, Actual: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatches (-want +got):\n%s", diff)
	}

	for _, s := range r.Summaries() {
		full, _ := r.Category(s.Key)
		assert.Equal(t, len(full.Moves), s.MoveCount, s.Key)
		assert.Len(t, s.MoveIDs, s.MoveCount)
	}
}

func TestNewRejectsBadCatalogs(t *testing.T) {
	move := func(id string, level types.Level) types.Move {
		return types.Move{ID: id, Name: id, Level: level}
	}
	cases := map[string][]types.Category{
		"empty":          nil,
		"missing key":    {{Title: "x"}},
		"duplicate key":  {{Key: "a"}, {Key: "a"}},
		"duplicate move": {{Key: "a", Moves: []types.Move{move("m", types.LevelBeginner)}}, {Key: "b", Moves: []types.Move{move("m", types.LevelAdvanced)}}},
		"bad level":      {{Key: "a", Moves: []types.Move{move("m", "Expert")}}},
		"missing id":     {{Key: "a", Moves: []types.Move{{Name: "n", Level: types.LevelBeginner}}}},
	}
	for name, cats := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(cats)
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [unterminated"))
	assert.Error(t, err)
}

func TestParseLevelIsCaseInsensitive(t *testing.T) {
	raw := []byte(`
categories:
  - key: sweeps
    title: Sweeps
    moves:
      - id: scissor
        name: Scissor Sweep
        level: intermediate
`)
	r, err := Parse(raw)
	require.NoError(t, err)
	m, ok := r.Move("scissor")
	require.True(t, ok)
	assert.Equal(t, types.LevelIntermediate, m.Level)
}

func TestParseRejectsUnknownLevel(t *testing.T) {
	raw := []byte(`
categories:
  - key: sweeps
    moves:
      - id: scissor
        name: Scissor Sweep
        level: Expert
`)
	_, err := Parse(raw)
	assert.ErrorContains(t, err, `unknown level "Expert"`)
}
