package cooccurrence

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowTwoEdges(t *testing.T) {
	g, err := New([]string{"a", "b", "c", "d"}, Options{Window: 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Weight("a", "b"))
	assert.Equal(t, 1.0, g.Weight("b", "c"))
	assert.Equal(t, 1.0, g.Weight("c", "d"))
	assert.Equal(t, 0.0, g.Weight("a", "c"))
	assert.Equal(t, 0.0, g.Weight("a", "d"))
}

func TestWindowThreeAddsTransitiveEdges(t *testing.T) {
	g, err := New([]string{"a", "b", "c", "d"}, Options{Window: 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Weight("a", "b"))
	assert.Equal(t, 1.0, g.Weight("b", "c"))
	assert.Equal(t, 1.0, g.Weight("c", "d"))
	assert.Equal(t, 1.0, g.Weight("a", "c"))
	assert.Equal(t, 1.0, g.Weight("b", "d"))
	assert.Equal(t, 0.0, g.Weight("a", "d"))
}

func TestSymmetric(t *testing.T) {
	g, err := New([]string{"a", "b", "c", "a", "b"}, Options{Window: 2})
	require.NoError(t, err)
	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			assert.Equal(t, g.Weight(u, v), g.Weight(v, u))
		}
	}
}

func TestInvalidWindow(t *testing.T) {
	_, err := New([]string{"a", "b"}, Options{Window: 1})
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestParallelMatchesSequential(t *testing.T) {
	tokens := make([]string, 0, 200)
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for i := 0; i < 200; i++ {
		tokens = append(tokens, words[i%len(words)])
	}
	seq, err := New(tokens, Options{Window: 3})
	require.NoError(t, err)
	par, err := New(tokens, Options{Window: 3, Parallel: true})
	require.NoError(t, err)
	for _, u := range words {
		for _, v := range words {
			assert.Equal(t, seq.Weight(u, v), par.Weight(u, v), "u=%s v=%s", u, v)
		}
	}
}

// TestSymmetricProperty checks co-occurrence symmetry against randomized
// token streams instead of one fixed example: any window over any
// vocabulary yields a symmetric adjacency.
func TestSymmetricProperty(t *testing.T) {
	vocab := []string{"a", "b", "c", "d", "e"}
	f := func(seed uint16, lenSeed uint8, windowSeed uint8) bool {
		n := int(lenSeed%30) + 2
		window := int(windowSeed%4) + 2
		tokens := make([]string, n)
		for i := range tokens {
			tokens[i] = vocab[(int(seed)+i)%len(vocab)]
		}
		g, err := New(tokens, Options{Window: window})
		if err != nil {
			return false
		}
		for _, u := range g.Vertices() {
			for _, v := range g.Vertices() {
				if g.Weight(u, v) != g.Weight(v, u) {
					return false
				}
			}
		}
		return true
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestUnknownVertexWeightIsZero(t *testing.T) {
	g, err := New([]string{"a", "b"}, Options{Window: 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.Weight("zzz", "a"))
}
