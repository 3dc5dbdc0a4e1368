package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensFiltersStopWordsAndPunctuation(t *testing.T) {
	opt := Options{
		StopWords:   set("the", "and"),
		Punctuation: set(","),
	}
	got := Tokens("The cat, and the dog ran.", opt)
	assert.Equal(t, []string{"cat", "dog", "ran"}, got)
}

func TestTokensKeepsLetterDigitRun(t *testing.T) {
	got := Tokens("room 42b", Options{})
	assert.Equal(t, []string{"room", "42b"}, got)
}

func TestTokensStopWordWinsOverPunctuationOverlap(t *testing.T) {
	opt := Options{
		StopWords:   set("vs"),
		Punctuation: set("vs"),
	}
	got := Tokens("cats vs dogs", opt)
	assert.Equal(t, []string{"cats", "dogs"}, got)
}

func TestTokensCollapsesWhitespace(t *testing.T) {
	got := Tokens("a   b\t\tc\n\nd", Options{})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestSentencesSplitOnTerminators(t *testing.T) {
	got := Sentences("Cats run. Dogs jump! Birds fly?", Options{})
	assert.Equal(t, [][]string{
		{"cats", "run"},
		{"dogs", "jump"},
		{"birds", "fly"},
	}, got)
}

func TestSentencesKeepStopWords(t *testing.T) {
	opt := Options{StopWords: set("the")}
	got := Sentences("The cat sat.", opt)
	assert.Equal(t, [][]string{{"the", "cat", "sat"}}, got)
}

func TestPhrasesDelimitedByStopWords(t *testing.T) {
	opt := Options{StopWords: set("and")}
	got := Phrases("red apples and green apples taste great", opt)
	assert.Equal(t, [][]string{
		{"red", "apples"},
		{"green", "apples", "taste", "great"},
	}, got)
}

func TestPhrasesRespectMaxLength(t *testing.T) {
	opt := Options{MaxPhraseLength: 2}
	got := Phrases("red big apples", opt)
	assert.Equal(t, [][]string{{"red", "big"}, {"apples"}}, got)
}

func TestPhrasesBreakOnPunctuation(t *testing.T) {
	got := Phrases("red apples, green apples", Options{})
	assert.Equal(t, [][]string{
		{"red", "apples"},
		{"green", "apples"},
	}, got)
}

func TestPhrasesDiscardEmpty(t *testing.T) {
	opt := Options{StopWords: set("and")}
	got := Phrases("and and and", opt)
	assert.Empty(t, got)
}

func TestRawSentencesPreservesSurfaceCasing(t *testing.T) {
	opt := Options{StopWords: set("is"), Punctuation: set("vs")}
	got := RawSentences("MACHINE learning is better vs worse.", opt)
	a := assert.New(t)
	a.Len(got, 1)
	a.Len(got[0], 6)
	a.Equal("MACHINE", got[0][0].Surface)
	a.Equal("machine", got[0][0].Lower)
	a.False(got[0][0].IsStop)
	a.True(got[0][2].IsStop)
	a.True(got[0][4].IsPunct)
}

func TestRawSentencesSplitsOnTerminators(t *testing.T) {
	got := RawSentences("Cats run. Dogs jump!", Options{})
	assert.Len(t, got, 2)
	assert.Equal(t, "Cats", got[0][0].Surface)
	assert.Equal(t, "Dogs", got[1][0].Surface)
}

func TestEmptyInputProducesEmptyOutput(t *testing.T) {
	assert.Empty(t, Tokens("", Options{}))
	assert.Empty(t, Sentences("", Options{}))
	assert.Empty(t, Phrases("", Options{}))
}

func set(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
