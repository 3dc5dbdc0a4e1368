package simplifiedyake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatedPhraseOutscoresSingletons(t *testing.T) {
	y, err := New(
		"machine learning is great. machine learning builds models. learning is useful.",
		Options{StopWords: set("is", "great", "useful")},
	)
	require.NoError(t, err)

	scores := make(map[string]float32)
	for _, s := range y.TopWithScores(100) {
		scores[s.Term] = s.Score
	}
	require.Contains(t, scores, "machine learning")
	require.Contains(t, scores, "models")
	assert.Greater(t, scores["machine learning"], scores["models"])
}

func TestTopOrderedDescending(t *testing.T) {
	y, err := New("red apples and green apples taste great today", Options{StopWords: set("and")})
	require.NoError(t, err)
	scores := y.TopWithScores(100)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
	}
}

func TestDeduplicationDropsNearDuplicates(t *testing.T) {
	y, err := New("red apples. red apple. red apples.", Options{Threshold: 0.5})
	require.NoError(t, err)
	top := y.Top(20)
	count := 0
	for _, term := range top {
		if term == "red apples" || term == "red apple" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestScoreOfUnknownKeywordIsZero(t *testing.T) {
	y, err := New("red apples taste great", Options{})
	require.NoError(t, err)
	assert.Equal(t, float32(0), y.Score("xyzzy"))
}

func TestEmptyText(t *testing.T) {
	y, err := New("", Options{})
	require.NoError(t, err)
	assert.Empty(t, y.Top(10))
}

func TestInvalidThresholdRejected(t *testing.T) {
	_, err := New("a b c", Options{Threshold: 1.5})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestOutOfRangeWeightFallsBackToStatisticalDefault(t *testing.T) {
	y, err := New("red apples taste great", Options{Weights: Weights{TF: -1, C: 2, PF: 0, PL: 0.4}})
	require.NoError(t, err)
	require.NotEmpty(t, y.Top(10))
}

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
