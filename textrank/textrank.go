// Package textrank implements TextRank: an undirected weighted graph of
// co-occurring content words, ranked by damped power iteration over the
// graph, then aggregated into phrase scores. The power iteration follows
// the classic PageRank recurrence (row-normalize, apply damping, iterate
// to an error threshold), adapted from a dense matrix formulation to the
// sparse internal/graph adjacency already used by cooccurrence, with the
// convergence test expressed as a max-delta-across-vertices criterion.
package textrank

import (
	"fmt"
	"strings"

	"github.com/oarkflow/keywords/cooccurrence"
	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/tokenizer"
)

// Options configures construction. The zero value is invalid — use
// DefaultOptions() or fill in every field explicitly.
type Options struct {
	StopWords   map[string]struct{}
	Punctuation map[string]struct{}
	// Window is the co-occurrence sliding-window size; must be >= 2.
	Window int
	// Damping is the PageRank-style damping factor; must be in (0,1].
	Damping float64
	// MaxIter bounds power-iteration steps; must be >= 1.
	MaxIter int
	// Tolerance is the max per-vertex delta that counts as converged.
	Tolerance float64
	// MaxPhraseLength caps candidate-phrase length for phrase ranking.
	MaxPhraseLength int
	// NormalizePhraseScores divides a phrase's summed word score by its
	// length instead of reporting the raw sum.
	NormalizePhraseScores bool
	// Parallel enables chunked co-occurrence accumulation.
	Parallel bool
}

// DefaultOptions returns the standard TextRank defaults: window=2,
// damping=0.85, max_iter=100, tol=1e-6.
func DefaultOptions() Options {
	return Options{Window: 2, Damping: 0.85, MaxIter: 100, Tolerance: 1e-6}
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

// TextRank is an immutable single-document word/phrase ranker.
type TextRank struct {
	wordScore map[string]float32
	phrases   [][]string
	opt       Options
}

// New tokenizes text into content-word sentences, builds a co-occurrence
// graph over them, and runs damped power iteration to convergence.
func New(text string, opt Options) (*TextRank, error) {
	if err := validate(opt); err != nil {
		return nil, fmt.Errorf("textrank: %w", err)
	}

	tokOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	sentences := tokenizer.Sentences(text, tokOpt)

	// Co-occurrence windows never bridge a sentence boundary: each
	// sentence's content tokens form their own slice.
	contentSentences := make([][]string, 0, len(sentences))
	for _, sent := range sentences {
		var content []string
		for _, tok := range sent {
			if _, isStop := opt.StopWords[tok]; isStop {
				continue
			}
			if _, isPunct := opt.Punctuation[tok]; isPunct {
				continue
			}
			content = append(content, tok)
		}
		if len(content) > 0 {
			contentSentences = append(contentSentences, content)
		}
	}

	graph, err := cooccurrence.NewFromSentences(contentSentences, cooccurrence.Options{Window: opt.Window, Parallel: opt.Parallel})
	if err != nil {
		return nil, fmt.Errorf("textrank: %w", err)
	}

	scores := powerIteration(graph, opt.Damping, opt.MaxIter, opt.Tolerance)

	phraseOpt := tokenizer.Options{
		StopWords:       opt.StopWords,
		Punctuation:     opt.Punctuation,
		MaxPhraseLength: opt.MaxPhraseLength,
	}
	phrases := tokenizer.Phrases(text, phraseOpt)

	return &TextRank{wordScore: scores, phrases: phrases, opt: opt}, nil
}

func validate(opt Options) error {
	if opt.Window < 2 {
		return &ConfigError{Field: "Window", Value: opt.Window, Msg: "must be >= 2"}
	}
	if opt.Damping <= 0 || opt.Damping > 1 {
		return &ConfigError{Field: "Damping", Value: opt.Damping, Msg: "must be in (0,1]"}
	}
	if opt.MaxIter < 1 {
		return &ConfigError{Field: "MaxIter", Value: opt.MaxIter, Msg: "must be >= 1"}
	}
	if opt.Tolerance <= 0 {
		return &ConfigError{Field: "Tolerance", Value: opt.Tolerance, Msg: "must be > 0"}
	}
	return nil
}

// powerIteration runs the damped walk s'(v) = (1-d) + d*Sum_u s(u)*w(u,v)/outWeight(u)
// to convergence or MaxIter, guarding isolated vertices (outWeight==0) by
// excluding them from the sum instead of dividing by zero.
func powerIteration(g *cooccurrence.Graph, damping float64, maxIter int, tol float64) map[string]float32 {
	dense := g.Dense()
	n := dense.N()
	scores := make(map[string]float32, n)
	if n == 0 {
		return scores
	}

	s := make([]float64, n)
	for i := range s {
		s[i] = 1.0
	}
	outWeight := make([]float64, n)
	for i := 0; i < n; i++ {
		outWeight[i] = dense.OutWeight(i)
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make([]float64, n)
		for v := 0; v < n; v++ {
			sum := 0.0
			for u, w := range dense.Neighbors(v) {
				if outWeight[u] == 0 {
					continue
				}
				sum += s[u] * w / outWeight[u]
			}
			next[v] = (1 - damping) + damping*sum
		}
		maxDelta := 0.0
		for v := 0; v < n; v++ {
			delta := next[v] - s[v]
			if delta < 0 {
				delta = -delta
			}
			if delta > maxDelta {
				maxDelta = delta
			}
		}
		s = next
		if maxDelta < tol {
			break
		}
	}

	for i := 0; i < n; i++ {
		scores[dense.Name(i)] = float32(s[i])
	}
	return scores
}

// Top returns at most k content words ranked by converged score,
// descending, lexicographic on ties.
func (t *TextRank) Top(k int) []string {
	return rank.Terms(t.topWordsScored(k))
}

// TopWithScores is Top, paired with each word's score.
func (t *TextRank) TopWithScores(k int) []rank.Scored {
	return t.topWordsScored(k)
}

func (t *TextRank) topWordsScored(k int) []rank.Scored {
	items := make([]rank.Scored, 0, len(t.wordScore))
	for w, s := range t.wordScore {
		items = append(items, rank.Scored{Term: w, Score: s})
	}
	return rank.TopK(items, k, true)
}

// TopPhrases re-segments text into candidate phrases and scores each as
// the sum (or, with Options.NormalizePhraseScores, the mean) of its
// content words' converged scores. Duplicate phrase strings keep the
// maximum score.
func (t *TextRank) TopPhrases(k int) []string {
	return rank.Terms(t.topPhrasesScored(k))
}

// TopPhrasesWithScores is TopPhrases, paired with each phrase's score.
func (t *TextRank) TopPhrasesWithScores(k int) []rank.Scored {
	return t.topPhrasesScored(k)
}

func (t *TextRank) topPhrasesScored(k int) []rank.Scored {
	best := make(map[string]float32)
	for _, phrase := range t.phrases {
		var sum float32
		for _, w := range phrase {
			sum += t.wordScore[w]
		}
		score := sum
		if t.opt.NormalizePhraseScores && len(phrase) > 0 {
			score = sum / float32(len(phrase))
		}
		key := strings.Join(phrase, " ")
		if existing, ok := best[key]; !ok || score > existing {
			best[key] = score
		}
	}
	items := make([]rank.Scored, 0, len(best))
	for phrase, score := range best {
		items = append(items, rank.Scored{Term: phrase, Score: score})
	}
	return rank.TopK(items, k, true)
}
