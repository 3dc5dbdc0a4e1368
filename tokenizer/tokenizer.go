// Package tokenizer implements the Unicode-aware word splitting, phrase
// segmentation, and stop-word/punctuation filtering shared by every
// algorithm in this module. The word-splitting pattern generalizes
// `[’']?[\pL]+[’']?|\pN+`, nlp/tokenizer.TokenizeSubwords's subword
// regex; non-word grapheme clusters between
// matches are inspected directly to detect sentence/phrase boundaries
// rather than tokenized themselves, so punctuation and whitespace never
// become tokens in their own right.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// reWord matches a maximal content-token run of letters, marks and digits
// with an optional bounding apostrophe, so "42b" stays one token.
var reWord = regexp.MustCompile(`[’']?[\pL\pM\pN]+[’']?`)

// Options configures tokenization. The zero value keeps every token and
// emits a single implicit sentence/phrase boundary at the end of input.
type Options struct {
	StopWords   map[string]struct{}
	Punctuation map[string]struct{}
	// MaxPhraseLength caps candidate-phrase length; 0 means unbounded
	// except by natural stop-word/punctuation delimiters.
	MaxPhraseLength int
}

type match struct {
	text       string
	start, end int
}

func scan(text string) []match {
	idx := reWord.FindAllStringIndex(text, -1)
	out := make([]match, len(idx))
	for i, p := range idx {
		out[i] = match{text: strings.ToLower(text[p[0]:p[1]]), start: p[0], end: p[1]}
	}
	return out
}

// Tokens returns the flat list of content tokens in text: lowercased,
// word-like runs that are neither a stop word nor punctuation.
func Tokens(text string, opt Options) []string {
	var out []string
	for _, m := range scan(text) {
		if isFiltered(m.text, opt) {
			continue
		}
		out = append(out, m.text)
	}
	return out
}

// Sentences splits text into sentences, each a list of tokens with stop
// words included (punctuation excluded). A sentence boundary is any gap
// between tokens containing a terminator (`.`, `!`, `?`) or a blank-line
// paragraph break.
func Sentences(text string, opt Options) [][]string {
	matches := scan(text)
	var sentences [][]string
	var cur []string
	prevEnd := 0
	for _, m := range matches {
		gap := text[prevEnd:m.start]
		if gapBreaksSentence(gap) && len(cur) > 0 {
			sentences = append(sentences, cur)
			cur = nil
		}
		prevEnd = m.end
		if _, isPunct := matchesSet(m.text, opt.Punctuation); isPunct {
			continue
		}
		cur = append(cur, m.text)
	}
	if len(cur) > 0 {
		sentences = append(sentences, cur)
	}
	return sentences
}

// Phrases segments text into candidate phrases: maximal runs of content
// tokens uninterrupted by a stop word, punctuation, or text boundary,
// split further into MaxPhraseLength-sized pieces when set.
func Phrases(text string, opt Options) [][]string {
	matches := scan(text)
	var phrases [][]string
	var cur []string
	prevEnd := 0
	flush := func() {
		if len(cur) == 0 {
			return
		}
		phrases = append(phrases, splitMax(cur, opt.MaxPhraseLength)...)
		cur = nil
	}
	for _, m := range matches {
		gap := text[prevEnd:m.start]
		if gapBreaksPhrase(gap) {
			flush()
		}
		prevEnd = m.end
		if isFiltered(m.text, opt) {
			flush()
			continue
		}
		cur = append(cur, m.text)
	}
	flush()
	return phrases
}

// RawToken is a single matched token with both its original surface form
// and its lowercased form, plus the stop-word/punctuation classification
// used by Tokens/Sentences/Phrases. YAKE needs the surface form to detect
// casing, which the lowercasing Tokens/Sentences/Phrases discard.
type RawToken struct {
	Surface string
	Lower   string
	IsStop  bool
	IsPunct bool
}

// RawSentences splits text into sentences like Sentences, but keeps every
// matched token (including punctuation and stop words) with its surface
// form intact, for algorithms that need original casing or full context.
func RawSentences(text string, opt Options) [][]RawToken {
	idx := reWord.FindAllStringIndex(text, -1)
	var sentences [][]RawToken
	var cur []RawToken
	prevEnd := 0
	for _, p := range idx {
		surface := text[p[0]:p[1]]
		lower := strings.ToLower(surface)
		gap := text[prevEnd:p[0]]
		if gapBreaksSentence(gap) && len(cur) > 0 {
			sentences = append(sentences, cur)
			cur = nil
		}
		prevEnd = p[1]
		_, isStop := matchesSet(lower, opt.StopWords)
		_, isPunct := matchesSet(lower, opt.Punctuation)
		cur = append(cur, RawToken{Surface: surface, Lower: lower, IsStop: isStop, IsPunct: isPunct})
	}
	if len(cur) > 0 {
		sentences = append(sentences, cur)
	}
	return sentences
}

func splitMax(phrase []string, max int) [][]string {
	if max <= 0 || len(phrase) <= max {
		return [][]string{phrase}
	}
	var out [][]string
	for i := 0; i < len(phrase); i += max {
		end := i + max
		if end > len(phrase) {
			end = len(phrase)
		}
		out = append(out, phrase[i:end])
	}
	return out
}

// gapBreaksPhrase reports whether the text between two consecutive
// content tokens contains any non-whitespace rune, i.e. punctuation.
func gapBreaksPhrase(gap string) bool {
	for _, r := range gap {
		if !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// gapBreaksSentence reports whether a gap contains a sentence terminator
// or a blank-line paragraph break.
func gapBreaksSentence(gap string) bool {
	if strings.ContainsAny(gap, ".!?") {
		return true
	}
	return strings.Count(gap, "\n") >= 2
}

// isFiltered reports whether tok must be excluded from content-token
// output: it is a stop word, or it is listed in the punctuation set. A
// token that is both a stop word and a punctuation entry is treated as a
// stop word.
func isFiltered(tok string, opt Options) bool {
	if _, isStop := matchesSet(tok, opt.StopWords); isStop {
		return true
	}
	_, isPunct := matchesSet(tok, opt.Punctuation)
	return isPunct
}

// matchesSet looks up tok case-insensitively (tok is already lowercased by
// the caller) against set, retrying with tok normalized to NFC so
// decomposed input still matches a composed set entry. Set entries are not
// normalized, and accents are not stripped.
func matchesSet(tok string, set map[string]struct{}) (string, bool) {
	if len(set) == 0 {
		return "", false
	}
	if _, ok := set[tok]; ok {
		return tok, true
	}
	folded := norm.NFC.String(tok)
	if folded != tok {
		if _, ok := set[folded]; ok {
			return folded, true
		}
	}
	return "", false
}
