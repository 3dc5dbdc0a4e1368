// Package yake implements YAKE: a single-document keyword extractor that
// scores each content token on five statistical features (casing,
// position, frequency, relatedness, sentence dispersion), fuses them into
// a per-term score, propagates that into n-gram candidate scores, and
// deduplicates near-identical candidates by Levenshtein similarity.
// Unlike the other four algorithms, lower scores are better.
package yake

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/stat"

	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/tokenizer"
)

// Options configures construction. Zero-valued N, Window, and Threshold
// fall back to the package defaults (3, 2, 0.9).
type Options struct {
	StopWords   map[string]struct{}
	Punctuation map[string]struct{}
	// N is the maximum candidate n-gram length. Default 3.
	N int
	// Window bounds how far apart two content tokens of the same sentence
	// may sit (counting content tokens only) to count as neighbors for the
	// relatedness feature. Default 2.
	Window int
	// Threshold is the Levenshtein-similarity cutoff above which a
	// candidate is considered a near-duplicate of an already-accepted one
	// and dropped. Default 0.9.
	Threshold float64
}

const (
	defaultN         = 3
	defaultWindow    = 2
	defaultThreshold = 0.9
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

func withDefaults(opt Options) Options {
	if opt.N <= 0 {
		opt.N = defaultN
	}
	if opt.Window <= 0 {
		opt.Window = defaultWindow
	}
	if opt.Threshold <= 0 {
		opt.Threshold = defaultThreshold
	}
	return opt
}

// YAKE is an immutable single-document extractor. Candidates are
// deduplicated once at construction and cached in ascending-score order.
type YAKE struct {
	ordered []rank.Scored
}

// New builds the per-term feature table, scores every n-gram candidate up
// to opt.N tokens, and runs the sequential deduplication walk.
func New(text string, opt Options) (*YAKE, error) {
	opt = withDefaults(opt)
	if opt.Threshold > 1 {
		return nil, fmt.Errorf("yake: %w", &ConfigError{Field: "Threshold", Value: opt.Threshold, Msg: "must be in (0,1]"})
	}

	tokOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	sentences := tokenizer.RawSentences(text, tokOpt)
	if len(sentences) == 0 {
		return &YAKE{}, nil
	}

	terms := buildFeatureTable(sentences, opt.Window)
	if len(terms) == 0 {
		return &YAKE{}, nil
	}
	wordScore := scoreTerms(terms, len(sentences))

	phraseOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	phrases := tokenizer.Phrases(text, phraseOpt)
	candidateFreq, candidateWords := enumerateCandidates(phrases, opt.N)

	items := make([]rank.Scored, 0, len(candidateFreq))
	for key, words := range candidateWords {
		items = append(items, rank.Scored{
			Term:  key,
			Score: candidateScore(words, candidateFreq[key], wordScore),
		})
	}
	ascending := rank.TopK(items, -1, false)
	ordered := dedup(ascending, opt.Threshold)

	return &YAKE{ordered: ordered}, nil
}

// featureRecord accumulates the raw counts behind a content term's five
// features.
type featureRecord struct {
	tf           int
	tfUpper      int
	tfProper     int
	offsets      []int
	sentenceIDs  []int
	sentenceSet  map[int]struct{}
	leftNeighbor map[string]int
	rightNeighbor map[string]int
}

// buildFeatureTable walks the document sentence by sentence and
// accumulates per-term casing, position, sentence-membership, and
// neighbor statistics. Position and sentence-membership are tracked
// against a document-wide token index, but left/right neighbor counting
// resets at each sentence boundary so a window never pairs two tokens
// that never appeared in the same sentence.
func buildFeatureTable(sentences [][]tokenizer.RawToken, window int) map[string]*featureRecord {
	terms := make(map[string]*featureRecord)
	get := func(lower string) *featureRecord {
		r, ok := terms[lower]
		if !ok {
			r = &featureRecord{sentenceSet: make(map[int]struct{}), leftNeighbor: make(map[string]int), rightNeighbor: make(map[string]int)}
			terms[lower] = r
		}
		return r
	}

	globalIdx := 0
	for si, sent := range sentences {
		var content []tokenizer.RawToken
		var contentIsInitial []bool
		for ti, tok := range sent {
			if tok.IsStop || tok.IsPunct {
				continue
			}
			content = append(content, tok)
			contentIsInitial = append(contentIsInitial, ti == 0)
		}

		for i, tok := range content {
			r := get(tok.Lower)
			r.tf++
			if isAllCaps(tok.Surface) {
				r.tfUpper++
			} else if isCapitalized(tok.Surface) && !contentIsInitial[i] {
				r.tfProper++
			}
			r.offsets = append(r.offsets, globalIdx)
			r.sentenceIDs = append(r.sentenceIDs, si)
			r.sentenceSet[si] = struct{}{}

			for d := 1; d <= window && i-d >= 0; d++ {
				r.leftNeighbor[content[i-d].Lower]++
			}
			for d := 1; d <= window && i+d < len(content); d++ {
				r.rightNeighbor[content[i+d].Lower]++
			}
			globalIdx++
		}
	}
	return terms
}

// scoreTerms turns the accumulated feature table into a per-term score,
// combining the five features into S(t); lower is more important.
func scoreTerms(terms map[string]*featureRecord, totalSentences int) map[string]float32 {
	tfs := make([]float64, 0, len(terms))
	maxTF := 0
	for _, r := range terms {
		tfs = append(tfs, float64(r.tf))
		if r.tf > maxTF {
			maxTF = r.tf
		}
	}
	meanTF, stdTF := stat.MeanStdDev(tfs, nil)

	scores := make(map[string]float32, len(terms))
	for term, r := range terms {
		cas := float64(max(r.tfUpper, r.tfProper)) / (1 + math.Log(float64(r.tf)))

		median := medianInt(r.sentenceIDs)
		pos := math.Log(math.Log(3 + median))

		frqDenom := meanTF + stdTF
		frq := 1.0
		if frqDenom != 0 {
			frq = float64(r.tf) / frqDenom
		}

		var plSum, prSum float64
		for _, c := range r.leftNeighbor {
			plSum += float64(c)
		}
		for _, c := range r.rightNeighbor {
			prSum += float64(c)
		}
		pl := plSum / float64(maxTF)
		pr := prSum / float64(maxTF)
		rel := 1 + (pl+pr)*float64(r.tf)/float64(maxTF)

		sen := float64(len(r.sentenceSet)) / float64(totalSentences)

		denom := cas + frq/rel + sen/rel
		if denom == 0 {
			denom = 1
		}
		s := (rel * pos) / denom
		scores[term] = float32(s)
	}
	return scores
}

// enumerateCandidates walks every stop-word/punctuation-delimited content
// run (phrase) and emits every contiguous subsequence of length 1..n as a
// candidate, counting corpus frequency by its space-joined string key.
func enumerateCandidates(phrases [][]string, n int) (freq map[string]int, words map[string][]string) {
	freq = make(map[string]int)
	words = make(map[string][]string)
	for _, phrase := range phrases {
		for start := 0; start < len(phrase); start++ {
			maxLen := n
			if start+maxLen > len(phrase) {
				maxLen = len(phrase) - start
			}
			for l := 1; l <= maxLen; l++ {
				cand := phrase[start : start+l]
				key := strings.Join(cand, " ")
				freq[key]++
				if _, ok := words[key]; !ok {
					words[key] = append([]string{}, cand...)
				}
			}
		}
	}
	return freq, words
}

// candidateScore applies score(c) = (prod S(t)) / (TF(c) * (1 + sum S(t))).
func candidateScore(words []string, tf int, wordScore map[string]float32) float32 {
	prod := 1.0
	var sum float64
	for _, w := range words {
		s := float64(wordScore[w])
		prod *= s
		sum += s
	}
	return float32(prod / (float64(tf) * (1 + sum)))
}

// dedup walks candidates in ascending (best-first) score order, keeping a
// candidate only if it is not a near-duplicate (Levenshtein similarity
// above threshold) of any candidate already accepted. Sequential by
// construction: each decision depends on everything accepted so far.
func dedup(ascending []rank.Scored, threshold float64) []rank.Scored {
	accepted := make([]rank.Scored, 0, len(ascending))
	for _, cand := range ascending {
		dup := false
		for _, acc := range accepted {
			if similarity(cand.Term, acc.Term) > threshold {
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

// similarity returns 1 - edit_distance/max(len(a),len(b)), the
// Levenshtein-similarity measure used for deduplication.
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
// rune slices, adapted from the Damerau-Levenshtein routine
// nlp/spellcheck uses for dictionary suggestion: same row-by-row DP,
// transposition cost dropped since YAKE's similarity
// measure is defined on insert/delete/substitute distance only.
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

func medianInt(xs []int) float64 {
	sorted := append([]int{}, xs...)
	sort.Ints(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// isAllCaps reports whether s has no lowercase letters and more than one
// rune, the TF_upper casing feature's "length > 1" guard against
// single-letter initials reading as shouted acronyms.
func isAllCaps(s string) bool {
	rs := []rune(s)
	if len(rs) <= 1 {
		return false
	}
	hasLetter := false
	for _, r := range rs {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isCapitalized reports whether s has an uppercase first rune and no other
// uppercase rune: the TF_proper casing feature.
func isCapitalized(s string) bool {
	rs := []rune(s)
	if len(rs) == 0 || !unicode.IsUpper(rs[0]) {
		return false
	}
	for _, r := range rs[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// Top returns at most k candidates ranked ascending by score (lower is
// better), lexicographic on ties.
func (y *YAKE) Top(k int) []string {
	return rank.Terms(y.topK(k))
}

// TopWithScores is Top, paired with each candidate's score.
func (y *YAKE) TopWithScores(k int) []rank.Scored {
	return y.topK(k)
}

func (y *YAKE) topK(k int) []rank.Scored {
	n := len(y.ordered)
	if k >= 0 && n > k {
		n = k
	}
	out := make([]rank.Scored, n)
	copy(out, y.ordered)
	return out
}
