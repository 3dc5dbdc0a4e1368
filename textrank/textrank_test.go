package textrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetricGraphConvergesToEqualScores(t *testing.T) {
	// Nine co-occurrence pairs split evenly across the three possible
	// edges (a-b, b-c, c-a) given a cyclic a,b,c repetition of length 10:
	// every vertex ends up with identical weighted degree, so the damped
	// walk must converge to identical, exactly-1.0 scores (scores sum to
	// |V|).
	tr, err := New("a b c a b c a b c a", DefaultOptions())
	require.NoError(t, err)

	scores := tr.TopWithScores(10)
	require.Len(t, scores, 3)
	var sum float32
	for _, s := range scores {
		assert.InDelta(t, 1.0, s.Score, 1e-5)
		sum += s.Score
	}
	assert.InDelta(t, 3.0, sum, 1e-4)
}

func TestIsolatedVertexDoesNotProduceNaN(t *testing.T) {
	// "lonely" is the only word of its sentence and windows never cross a
	// sentence boundary, so it has no edges and is isolated.
	tr, err := New("lonely. paired word. paired word.", Options{
		Window: 2, Damping: 0.85, MaxIter: 50, Tolerance: 1e-6,
	})
	require.NoError(t, err)
	for _, s := range tr.TopWithScores(10) {
		assert.False(t, isNaNOrInf(s.Score), "score for %s is non-finite: %v", s.Term, s.Score)
	}
}

func TestInvalidOptionsRejected(t *testing.T) {
	cases := []Options{
		{Window: 1, Damping: 0.85, MaxIter: 10, Tolerance: 1e-6},
		{Window: 2, Damping: 0, MaxIter: 10, Tolerance: 1e-6},
		{Window: 2, Damping: 1.5, MaxIter: 10, Tolerance: 1e-6},
		{Window: 2, Damping: 0.85, MaxIter: 0, Tolerance: 1e-6},
	}
	for _, opt := range cases {
		_, err := New("a b c", opt)
		require.Error(t, err)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
	}
}

func TestTopPhrasesDeduplicateByMax(t *testing.T) {
	tr, err := New("quick fox jumps. quick fox jumps again.", DefaultOptions())
	require.NoError(t, err)
	phrases := tr.TopPhrases(10)
	assert.NotEmpty(t, phrases)
	seen := make(map[string]bool)
	for _, p := range phrases {
		assert.False(t, seen[p], "duplicate phrase %q in output", p)
		seen[p] = true
	}
}

func TestEmptyText(t *testing.T) {
	tr, err := New("", DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, tr.Top(10))
	assert.Empty(t, tr.TopPhrases(10))
}

func isNaNOrInf(f float32) bool {
	return f != f || f > 3.4e38 || f < -3.4e38
}
