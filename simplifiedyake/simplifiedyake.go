// Package simplifiedyake implements a reduced-feature YAKE variant: a
// fixed n-gram candidate set is deduplicated by Levenshtein similarity
// before scoring (rather than after, as the full yake package does), and
// each surviving candidate is scored by a weighted sum of four corpus
// statistics — term frequency, a length-weighted c-value, first-order
// positional frequency, and length-normalized positional frequency —
// instead of yake's five-feature fusion. Higher scores are better.
package simplifiedyake

import (
	"fmt"
	"math"
	"strings"

	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/tokenizer"
)

// Weights controls how the four candidate statistics combine into a
// score: score = W.TF*tf + W.C*cValue + W.PF*pfo + W.PL*plo.
type Weights struct {
	TF float64
	C  float64
	PF float64
	PL float64
}

// MainWeights weighs every statistic equally at full strength.
func MainWeights() Weights { return Weights{TF: 1, C: 1, PF: 1, PL: 1} }

// StatisticalWeights down-weighs every statistic to 0.2, the balance used
// when candidates are expected to cluster tightly around the mean.
func StatisticalWeights() Weights { return Weights{TF: 0.2, C: 0.2, PF: 0.2, PL: 0.2} }

// Options configures construction. The zero value falls back to N=3,
// Threshold=0.8, and weights of 0.2 each (StatisticalWeights).
type Options struct {
	StopWords   map[string]struct{}
	Punctuation map[string]struct{}
	// N is the maximum candidate n-gram length. Default 3.
	N int
	// Threshold is the Levenshtein-similarity cutoff above which a
	// candidate is dropped as a near-duplicate of one already accepted.
	// Default 0.8.
	Threshold float64
	// Weights weighs the four per-candidate statistics. Any weight
	// outside (0,1] falls back to 0.2, matching the statistical default.
	Weights Weights
}

const (
	defaultN         = 3
	defaultThreshold = 0.8
)

// ConfigError is returned by New when opt is invalid.
type ConfigError struct {
	Field string
	Value any
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Field, e.Value, e.Msg)
}

func checkWeight(w float64) float64 {
	if w > 0 && w <= 1 {
		return w
	}
	return 0.2
}

func withDefaults(opt Options) Options {
	if opt.N <= 0 {
		opt.N = defaultN
	}
	if opt.Threshold <= 0 {
		opt.Threshold = defaultThreshold
	}
	opt.Weights = Weights{
		TF: checkWeight(opt.Weights.TF),
		C:  checkWeight(opt.Weights.C),
		PF: checkWeight(opt.Weights.PF),
		PL: checkWeight(opt.Weights.PL),
	}
	return opt
}

// SimplifiedYAKE is an immutable single-document extractor.
type SimplifiedYAKE struct {
	scores map[string]float32
}

// New segments text into sentence-bounded candidate phrases, generates
// every 1..opt.N n-gram, drops near-duplicates before scoring (earlier
// candidates win ties, matching the fold order candidates are produced
// in), and scores every surviving candidate.
func New(text string, opt Options) (*SimplifiedYAKE, error) {
	opt = withDefaults(opt)
	if opt.Threshold > 1 {
		return nil, fmt.Errorf("simplifiedyake: %w", &ConfigError{Field: "Threshold", Value: opt.Threshold, Msg: "must be in (0,1]"})
	}

	tokOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	sentences := tokenizer.Sentences(text, tokOpt)
	if len(sentences) == 0 {
		return &SimplifiedYAKE{}, nil
	}

	var phrases []string
	for _, sent := range sentences {
		phrases = append(phrases, strings.Join(sent, " "))
	}

	candidates := removeSimilar(generateCandidates(phrases, opt.N), opt.Threshold)
	if len(candidates) == 0 {
		return &SimplifiedYAKE{}, nil
	}

	scores := calculateWeights(candidates, opt.Weights)
	return &SimplifiedYAKE{scores: scores}, nil
}

// generateCandidates emits every contiguous n-gram (for n in 1..=maxN) of
// each whitespace-joined phrase, falling back to the whole phrase when
// it's shorter than n.
func generateCandidates(phrases []string, maxN int) []string {
	var out []string
	for n := 1; n <= maxN; n++ {
		for _, phrase := range phrases {
			words := strings.Fields(phrase)
			if len(words) < n {
				out = append(out, phrase)
				continue
			}
			for i := 0; i+n <= len(words); i++ {
				out = append(out, strings.Join(words[i:i+n], " "))
			}
		}
	}
	return out
}

// removeSimilar walks candidates in generation order, keeping a candidate
// only if its Levenshtein-similarity ratio to every already-accepted
// candidate is at or below threshold.
func removeSimilar(candidates []string, threshold float64) []string {
	accepted := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		dup := false
		for _, acc := range accepted {
			if similarity(cand, acc) > threshold {
				dup = true
				break
			}
		}
		if !dup {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

// calculateWeights scores every candidate on four statistics computed
// over the deduplicated candidate list itself (not the source document):
// tf (share of all candidate occurrences), c-value (log2(1+ngram
// length) * tf, rewarding longer recurring phrases), pfo (first-order
// positional frequency, identical to tf here since both are counted
// against the same total), and plo (occurrence count normalized by the
// square of the ngram's word length, penalizing long candidates that
// only appear once).
func calculateWeights(candidates []string, w Weights) map[string]float32 {
	counts := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		counts[c]++
	}
	total := float64(len(candidates))

	tf := make(map[string]float64, len(counts))
	cValue := make(map[string]float64, len(counts))
	plo := make(map[string]float64, len(counts))
	for term, count := range counts {
		length := float64(len(strings.Fields(term)))
		tf[term] = count / total
		cValue[term] = math.Log2(1+length) * (count / total)
		plo[term] = count / (length * length)
	}

	scores := make(map[string]float32, len(counts))
	for term, count := range counts {
		pfo := count / total
		score := w.TF*tf[term] + w.C*cValue[term] + w.PF*pfo + w.PL*plo[term]
		scores[term] = float32(score)
	}
	return scores
}

// similarity returns 1 - edit_distance/max(len(a),len(b)).
func similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// levenshtein is the plain (no-transposition) edit distance between two
// rune slices, shared in spirit with yake's dedup routine but kept as a
// private copy here since the two packages' dedup passes run at
// different points in the pipeline (before vs. after scoring) and
// shouldn't be coupled by a shared dependency for a 20-line routine.
func levenshtein(a, b []rune) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		cur[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			cur[j] = min(del, min(ins, sub))
		}
		prev, cur = cur, prev
	}
	return prev[m]
}

// Score returns the score of keyword, or 0 if it was never a candidate.
func (y *SimplifiedYAKE) Score(keyword string) float32 {
	return y.scores[keyword]
}

// Top returns at most k candidates ranked descending by score,
// lexicographic on ties.
func (y *SimplifiedYAKE) Top(k int) []string {
	return rank.Terms(y.topK(k))
}

// TopWithScores is Top, paired with each candidate's score.
func (y *SimplifiedYAKE) TopWithScores(k int) []rank.Scored {
	return y.topK(k)
}

func (y *SimplifiedYAKE) topK(k int) []rank.Scored {
	items := make([]rank.Scored, 0, len(y.scores))
	for term, score := range y.scores {
		items = append(items, rank.Scored{Term: term, Score: score})
	}
	return rank.TopK(items, k, true)
}
