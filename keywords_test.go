package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFeaturesBuildsThreeAlgorithms(t *testing.T) {
	ext, err := New("the cat sat. the dog ran. the cat ran.", set("the"), 0)
	require.NoError(t, err)

	for _, algo := range []Algorithm{AlgoTFIDF, AlgoRAKE, AlgoTextRank} {
		top, err := ext.Top(algo, 5)
		require.NoError(t, err, algo)
		assert.NotEmpty(t, top, algo)
	}

	_, err = ext.Top(AlgoYAKE, 5)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAllFeaturesIncludesYAKEAndCoOccurrence(t *testing.T) {
	ext, err := New("red apples and green apples taste great", set("and"), All)
	require.NoError(t, err)

	top, err := ext.Top(AlgoYAKE, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, top)

	top, err = ext.Top(AlgoSimplifiedYAKE, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, top)

	g := ext.CoOccurrence()
	require.NotNil(t, g)
	assert.NotEmpty(t, g.Vertices())
}

func TestUnknownAlgorithmRejected(t *testing.T) {
	ext, err := New("a b c", nil, TFIDF)
	require.NoError(t, err)
	_, err = ext.Top(Algorithm(99), 5)
	require.Error(t, err)
}

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
