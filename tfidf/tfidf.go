// Package tfidf scores terms across a corpus by term-frequency times
// inverse-document-frequency. It generalizes nlp/tfidf.Corpus
// (document-frequency table, per-document TF-IDF cache, cosine-similarity
// Rank) from a query-ranking helper into a per-term score averaged across
// the whole corpus.
package tfidf

import (
	"math"

	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/tokenizer"
)

// Options configures tokenization for the raw-text constructors.
type Options struct {
	StopWords   map[string]struct{}
	Punctuation map[string]struct{}
}

// TFIDF is an immutable corpus-level term scorer.
type TFIDF struct {
	docs   [][]string
	df     map[string]int
	idf    map[string]float64
	scores map[string]float32 // mean tf*idf across docs, precomputed at construction
}

// NewFromDocuments tokenizes each raw document and scores the resulting
// corpus (the "UnprocessedDocuments" construction variant).
func NewFromDocuments(docs []string, opt Options) (*TFIDF, error) {
	tokOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	tokenized := make([][]string, len(docs))
	for i, d := range docs {
		tokenized[i] = tokenizer.Tokens(d, tokOpt)
	}
	return NewFromTokens(tokenized)
}

// NewFromTokens builds a corpus from already-tokenized documents (the
// "ProcessedDocuments" construction variant).
func NewFromTokens(docs [][]string) (*TFIDF, error) {
	t := &TFIDF{docs: docs, df: make(map[string]int), idf: make(map[string]float64), scores: make(map[string]float32)}
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, w := range doc {
			if _, ok := seen[w]; !ok {
				t.df[w]++
				seen[w] = struct{}{}
			}
		}
	}
	n := float64(len(docs))
	for w, df := range t.df {
		t.idf[w] = math.Log((n+1)/(float64(df)+1)) + 1
	}
	sums := make(map[string]float64)
	for _, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		tf := make(map[string]int)
		for _, w := range doc {
			tf[w]++
		}
		for w, cnt := range tf {
			sums[w] += float64(cnt) / float64(len(doc)) * t.idf[w]
		}
	}
	for w, sum := range sums {
		t.scores[w] = float32(sum / n)
	}
	return t, nil
}

// NewFromTextBlock treats each sentence of text as a document (the
// "TextBlock" construction variant).
func NewFromTextBlock(text string, opt Options) (*TFIDF, error) {
	tokOpt := tokenizer.Options{StopWords: opt.StopWords, Punctuation: opt.Punctuation}
	sentences := tokenizer.Sentences(text, tokOpt)
	docs := make([][]string, len(sentences))
	for i, s := range sentences {
		doc := make([]string, 0, len(s))
		for _, tok := range s {
			if _, isStop := opt.StopWords[tok]; isStop {
				continue
			}
			if _, isPunct := opt.Punctuation[tok]; isPunct {
				continue
			}
			doc = append(doc, tok)
		}
		docs[i] = doc
	}
	return NewFromTokens(docs)
}

// Top returns at most k terms ranked by mean tf*idf score, descending,
// lexicographic on ties.
func (t *TFIDF) Top(k int) []string {
	return rank.Terms(t.topScored(k))
}

// TopWithScores is Top, paired with each term's score.
func (t *TFIDF) TopWithScores(k int) []rank.Scored {
	return t.topScored(k)
}

func (t *TFIDF) topScored(k int) []rank.Scored {
	items := make([]rank.Scored, 0, len(t.scores))
	for w, s := range t.scores {
		items = append(items, rank.Scored{Term: w, Score: s})
	}
	return rank.TopK(items, k, true)
}

// DocumentFrequency returns the number of documents term appears in.
func (t *TFIDF) DocumentFrequency(term string) int {
	return t.df[term]
}

// IDF returns the smoothed inverse-document-frequency of term, or 0 if
// term never appeared in the corpus.
func (t *TFIDF) IDF(term string) float64 {
	return t.idf[term]
}
