// Package cooccurrence builds a weighted word-word adjacency from sliding
// windows over a token stream. It is the shared helper behind textrank's
// graph construction and is also exposed standalone.
package cooccurrence

import (
	"fmt"

	"github.com/oarkflow/keywords/internal/graph"
	"github.com/oarkflow/keywords/internal/parallel"
)

// Graph is a symmetric weighted adjacency over the content tokens of a
// token stream.
type Graph struct {
	g *graph.Dense
}

// Options configures construction.
type Options struct {
	// Window is the sliding-window length; must be >= 2.
	Window int
	// Parallel enables chunked, errgroup-based accumulation.
	Parallel bool
}

// New slides a window of length opt.Window across tokens, incrementing the
// weight of every unordered pair of distinct tokens that co-occur inside a
// window. Stop-word/punctuation positions must already be filtered out of
// tokens by the caller (e.g. via tokenizer.Tokens) — cooccurrence treats
// every element of tokens as content.
func New(tokens []string, opt Options) (*Graph, error) {
	if opt.Window < 2 {
		return nil, fmt.Errorf("cooccurrence: %w", &ConfigError{Field: "Window", Value: opt.Window, Msg: "must be >= 2"})
	}
	if opt.Parallel && len(tokens) >= opt.Window*4 {
		return newParallel(tokens, opt.Window)
	}
	d := graph.New()
	slideWindow(d, tokens, 0, len(tokens), opt.Window)
	return &Graph{g: d}, nil
}

// NewFromSentences is New, but slides the window independently within each
// sentence and merges the resulting per-sentence graphs by summation — no
// pair spanning a sentence boundary is ever counted. Callers that segment
// text into sentences before building a graph (textrank) use this instead
// of flattening sentences into one token stream, which would let windows
// bridge unrelated sentences.
func NewFromSentences(sentences [][]string, opt Options) (*Graph, error) {
	if opt.Window < 2 {
		return nil, fmt.Errorf("cooccurrence: %w", &ConfigError{Field: "Window", Value: opt.Window, Msg: "must be >= 2"})
	}
	merged := graph.New()
	for _, sent := range sentences {
		g, err := New(sent, opt)
		if err != nil {
			return nil, err
		}
		merged.Merge(g.g)
	}
	return &Graph{g: merged}, nil
}

// ConfigError is returned by New when opt is invalid.
type ConfigError struct {
	Field string
	Value any
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Field, e.Value, e.Msg)
}

// slideWindow pairs each token at position i (for i in [lo,hi)) with every
// token within w-1 positions ahead of it, incrementing each pair once.
// This is equivalent to sliding a length-w window across the sequence and
// counting each co-occurring pair once per window, without the
// double-counting a naive "re-scan every full window" approach produces
// for pairs that fall inside more than one overlapping window.
func slideWindow(d *graph.Dense, tokens []string, lo, hi, w int) {
	for i := lo; i < hi; i++ {
		maxJ := i + w - 1
		if maxJ >= len(tokens) {
			maxJ = len(tokens) - 1
		}
		for j := i + 1; j <= maxJ; j++ {
			u := d.Intern(tokens[i])
			v := d.Intern(tokens[j])
			d.AddEdge(u, v, 1)
		}
	}
}

// newParallel partitions tokens into overlapping chunks of length >= w,
// accumulates a per-chunk graph, and merges by summation in a fixed,
// chunk-index reduction order so the result never depends on goroutine
// scheduling.
func newParallel(tokens []string, w int) (*Graph, error) {
	chunks := parallel.Chunks(len(tokens), w*4)
	partials, err := parallel.Map(chunks, func(lo, hi int) (*graph.Dense, error) {
		// extend hi by w-1 so windows starting near the chunk's end
		// still see their full overlap with the next chunk.
		extHi := hi + w - 1
		if extHi > len(tokens) {
			extHi = len(tokens)
		}
		d := graph.New()
		slideWindow(d, tokens[lo:extHi], 0, hi-lo, w)
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	merged := graph.New()
	for _, p := range partials {
		merged.Merge(p)
	}
	return &Graph{g: merged}, nil
}

// Weight returns the non-negative co-occurrence count between u and v.
func (g *Graph) Weight(u, v string) float64 {
	uID, ok := g.g.ID(u)
	if !ok {
		return 0
	}
	vID, ok := g.g.ID(v)
	if !ok {
		return 0
	}
	return g.g.Weight(uID, vID)
}

// Vertices returns every distinct content token seen during construction.
func (g *Graph) Vertices() []string {
	return g.g.Vertices()
}

// Neighbors returns the vertices adjacent to u with their edge weights.
func (g *Graph) Neighbors(u string) map[string]float64 {
	uID, ok := g.g.ID(u)
	if !ok {
		return nil
	}
	out := make(map[string]float64)
	for vID, w := range g.g.Neighbors(uID) {
		out[g.g.Name(vID)] = w
	}
	return out
}

// Dense exposes the underlying dense graph for textrank's power iteration,
// which needs integer ids rather than repeated string lookups.
func (g *Graph) Dense() *graph.Dense {
	return g.g
}
