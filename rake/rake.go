// Package rake implements RAKE (Rapid Automatic Keyword Extraction):
// stop-word-delimited candidate phrases scored by per-word
// degree/frequency. It generalizes nlp/keyword.Extract,
// which hard-codes the package-global stopwords.Set and only returns an
// unscored phrase ordering, into a caller-configurable, scored extractor.
package rake

import (
	"strings"

	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/tokenizer"
)

// Options configures construction. The zero value has no stop words, so
// candidate phrases are split only where punctuation separates words.
type Options struct {
	StopWords       map[string]struct{}
	Punctuation     map[string]struct{}
	MaxPhraseLength int
}

// RAKE is an immutable single-document phrase extractor.
type RAKE struct {
	phraseScores map[string]float32
}

// New segments text into candidate phrases and scores each word by
// degree(w)/freq(w), then sums word scores into a phrase score.
func New(text string, opt Options) (*RAKE, error) {
	tokOpt := tokenizer.Options{
		StopWords:       opt.StopWords,
		Punctuation:     opt.Punctuation,
		MaxPhraseLength: opt.MaxPhraseLength,
	}
	phrases := tokenizer.Phrases(text, tokOpt)

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, w := range phrase {
			freq[w]++
			degree[w] += len(phrase)
		}
	}
	wordScore := make(map[string]float32, len(freq))
	for w, f := range freq {
		wordScore[w] = float32(degree[w]) / float32(f)
	}

	phraseScores := make(map[string]float32)
	for _, phrase := range phrases {
		var sum float32
		for _, w := range phrase {
			sum += wordScore[w]
		}
		key := strings.Join(phrase, " ")
		if existing, ok := phraseScores[key]; !ok || sum > existing {
			phraseScores[key] = sum
		}
	}
	return &RAKE{phraseScores: phraseScores}, nil
}

// Top returns at most k phrases ranked by score, descending, lexicographic
// on ties.
func (r *RAKE) Top(k int) []string {
	return rank.Terms(r.topScored(k))
}

// TopWithScores is Top, paired with each phrase's score.
func (r *RAKE) TopWithScores(k int) []rank.Scored {
	return r.topScored(k)
}

func (r *RAKE) topScored(k int) []rank.Scored {
	items := make([]rank.Scored, 0, len(r.phraseScores))
	for phrase, score := range r.phraseScores {
		items = append(items, rank.Scored{Term: phrase, Score: score})
	}
	return rank.TopK(items, k, true)
}
