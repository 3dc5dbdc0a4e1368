package rake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlappingWordDegreeScoresPhrases(t *testing.T) {
	// The comma ends "green apples" before "taste great"; without it the
	// stop-word-delimited run would be the single phrase
	// "green apples taste great".
	r, err := New("red apples and green apples, taste great", Options{
		StopWords: set("and"),
	})
	require.NoError(t, err)

	scores := make(map[string]float32)
	for _, s := range r.TopWithScores(10) {
		scores[s.Term] = s.Score
	}
	assert.InDelta(t, 4.0, scores["red apples"], 1e-6)
	assert.InDelta(t, 4.0, scores["green apples"], 1e-6)
	assert.InDelta(t, 4.0, scores["taste great"], 1e-6)

	top := r.Top(3)
	assert.Equal(t, []string{"green apples", "red apples", "taste great"}, top)
}

func TestDuplicatePhrasesKeepMaxNotSum(t *testing.T) {
	r, err := New("urgent task. urgent task.", Options{})
	require.NoError(t, err)
	top := r.TopWithScores(5)
	require.Len(t, top, 1)
	assert.Equal(t, "urgent task", top[0].Term)
	assert.InDelta(t, 4.0, top[0].Score, 1e-6)
}

func TestMaxPhraseLength(t *testing.T) {
	r, err := New("red big shiny apples", Options{MaxPhraseLength: 2})
	require.NoError(t, err)
	phrases := r.Top(10)
	assert.ElementsMatch(t, []string{"red big", "shiny apples"}, phrases)
}

func TestEmptyText(t *testing.T) {
	r, err := New("", Options{})
	require.NoError(t, err)
	assert.Empty(t, r.Top(10))
}

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
