// Package keywords is a facade over the six standalone extractors
// (tfidf, rake, textrank, yake, simplifiedyake, cooccurrence): given text
// and a feature set, it builds only the requested algorithms and exposes
// one Top/TopWithScores query surface over all of them. Each algorithm
// remains fully usable on its own through its own package; this facade
// is additive convenience for callers who want several at once.
package keywords

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/oarkflow/keywords/cooccurrence"
	"github.com/oarkflow/keywords/internal/rank"
	"github.com/oarkflow/keywords/rake"
	"github.com/oarkflow/keywords/simplifiedyake"
	"github.com/oarkflow/keywords/textrank"
	"github.com/oarkflow/keywords/tfidf"
	"github.com/oarkflow/keywords/tokenizer"
	"github.com/oarkflow/keywords/yake"
)

// Features is a bitmask of which algorithms New builds.
type Features uint8

const (
	TFIDF Features = 1 << iota
	RAKE
	TextRank
	CoOccurrence
	YAKE
	SimplifiedYAKE
	Parallel

	// DefaultFeatures is the default enabled set.
	DefaultFeatures = TFIDF | RAKE | TextRank
	// All enables every algorithm, including co-occurrence, YAKE, and the
	// reduced-feature YAKE variant.
	All = TFIDF | RAKE | TextRank | CoOccurrence | YAKE | SimplifiedYAKE
)

func (f Features) has(bit Features) bool { return f&bit != 0 }

// Algorithm names one of the scored extractors for Extractor.Top/TopWithScores.
type Algorithm int

const (
	AlgoTFIDF Algorithm = iota
	AlgoRAKE
	AlgoTextRank
	AlgoYAKE
	AlgoSimplifiedYAKE
)

func (a Algorithm) String() string {
	switch a {
	case AlgoTFIDF:
		return "tfidf"
	case AlgoRAKE:
		return "rake"
	case AlgoTextRank:
		return "textrank"
	case AlgoYAKE:
		return "yake"
	case AlgoSimplifiedYAKE:
		return "simplifiedyake"
	default:
		return "unknown"
	}
}

// ConfigError is returned by New when an algorithm it must build rejects
// its derived options, or when an unsupported Algorithm is queried.
type ConfigError struct {
	Field string
	Value any
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Field, e.Value, e.Msg)
}

type settings struct {
	logger              *zap.Logger
	punctuation         map[string]struct{}
	maxPhraseLength     int
	window              int
	damping             float64
	maxIter             int
	tolerance           float64
	ngramSize           int
	dedupThreshold      float64
	simplifiedN         int
	simplifiedThreshold float64
}

func defaultSettings() settings {
	trDefaults := textrank.DefaultOptions()
	return settings{
		logger:    zap.NewNop(),
		window:    trDefaults.Window,
		damping:   trDefaults.Damping,
		maxIter:   trDefaults.MaxIter,
		tolerance: trDefaults.Tolerance,
	}
}

// Option configures New. A setting left unset uses each algorithm's own
// default. Zero values passed to WithYAKETuning or
// WithSimplifiedYAKETuning also fall back to those defaults; the values
// passed to WithTextRankTuning reach textrank unchanged, and New returns
// an error when textrank rejects them.
type Option func(*settings)

// WithLogger injects a structured logger used to report construction-time
// diagnostics at debug level (TextRank's window and damping, the
// co-occurrence graph's vertex count). The default is a no-op logger, so
// the library stays silent unless a caller opts in.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithPunctuation sets the punctuation set shared by every algorithm this
// call to New builds.
func WithPunctuation(punct map[string]struct{}) Option {
	return func(s *settings) { s.punctuation = punct }
}

// WithMaxPhraseLength caps candidate-phrase length for RAKE and TextRank's
// phrase ranking.
func WithMaxPhraseLength(n int) Option {
	return func(s *settings) { s.maxPhraseLength = n }
}

// WithTextRankTuning overrides TextRank's co-occurrence window, damping
// factor, iteration cap, and convergence tolerance.
func WithTextRankTuning(window int, damping float64, maxIter int, tolerance float64) Option {
	return func(s *settings) {
		s.window = window
		s.damping = damping
		s.maxIter = maxIter
		s.tolerance = tolerance
	}
}

// WithYAKETuning overrides YAKE's n-gram size and deduplication threshold.
func WithYAKETuning(ngramSize int, dedupThreshold float64) Option {
	return func(s *settings) {
		s.ngramSize = ngramSize
		s.dedupThreshold = dedupThreshold
	}
}

// WithSimplifiedYAKETuning overrides the reduced-feature YAKE variant's
// n-gram size and deduplication threshold.
func WithSimplifiedYAKETuning(ngramSize int, dedupThreshold float64) Option {
	return func(s *settings) {
		s.simplifiedN = ngramSize
		s.simplifiedThreshold = dedupThreshold
	}
}

// Extractor holds the subset of algorithms New was asked to build. A nil
// field for an algorithm not requested by Features.
type Extractor struct {
	features Features
	logger   *zap.Logger

	tfidf          *tfidf.TFIDF
	rake           *rake.RAKE
	textrank       *textrank.TextRank
	yake           *yake.YAKE
	simplifiedyake *simplifiedyake.SimplifiedYAKE
	cooc           *cooccurrence.Graph
}

// New tokenizes and scores text with every algorithm named in features,
// using stop as the shared stop-word set.
func New(text string, stop map[string]struct{}, features Features, opts ...Option) (*Extractor, error) {
	if features == 0 {
		features = DefaultFeatures
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	ext := &Extractor{features: features, logger: s.logger}

	if features.has(TFIDF) {
		t, err := tfidf.NewFromTextBlock(text, tfidf.Options{StopWords: stop, Punctuation: s.punctuation})
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.tfidf = t
	}

	if features.has(RAKE) {
		r, err := rake.New(text, rake.Options{StopWords: stop, Punctuation: s.punctuation, MaxPhraseLength: s.maxPhraseLength})
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.rake = r
	}

	if features.has(TextRank) {
		trOpt := textrank.Options{
			StopWords:       stop,
			Punctuation:     s.punctuation,
			Window:          s.window,
			Damping:         s.damping,
			MaxIter:         s.maxIter,
			Tolerance:       s.tolerance,
			MaxPhraseLength: s.maxPhraseLength,
			Parallel:        features.has(Parallel),
		}
		tr, err := textrank.New(text, trOpt)
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.textrank = tr
		s.logger.Debug("textrank built", zap.Int("window", trOpt.Window), zap.Float64("damping", trOpt.Damping))
	}

	if features.has(YAKE) {
		y, err := yake.New(text, yake.Options{StopWords: stop, Punctuation: s.punctuation, N: s.ngramSize, Threshold: s.dedupThreshold})
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.yake = y
	}

	if features.has(SimplifiedYAKE) {
		sy, err := simplifiedyake.New(text, simplifiedyake.Options{StopWords: stop, Punctuation: s.punctuation, N: s.simplifiedN, Threshold: s.simplifiedThreshold})
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.simplifiedyake = sy
	}

	if features.has(CoOccurrence) {
		window := s.window
		if window < 2 {
			window = 2
		}
		tokens := tokenizer.Tokens(text, tokenizer.Options{StopWords: stop, Punctuation: s.punctuation})
		g, err := cooccurrence.New(tokens, cooccurrence.Options{Window: window, Parallel: features.has(Parallel)})
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		ext.cooc = g
		s.logger.Debug("cooccurrence built", zap.Int("vertices", len(g.Vertices())))
	}

	return ext, nil
}

// Top returns at most k terms from the named algorithm, in that
// algorithm's preferred order (descending score, except YAKE which is
// ascending).
func (e *Extractor) Top(algo Algorithm, k int) ([]string, error) {
	scored, err := e.TopWithScores(algo, k)
	if err != nil {
		return nil, err
	}
	return rank.Terms(scored), nil
}

// TopWithScores is Top, paired with each term's score.
func (e *Extractor) TopWithScores(algo Algorithm, k int) ([]rank.Scored, error) {
	switch algo {
	case AlgoTFIDF:
		if e.tfidf == nil {
			return nil, notBuilt(algo)
		}
		return e.tfidf.TopWithScores(k), nil
	case AlgoRAKE:
		if e.rake == nil {
			return nil, notBuilt(algo)
		}
		return e.rake.TopWithScores(k), nil
	case AlgoTextRank:
		if e.textrank == nil {
			return nil, notBuilt(algo)
		}
		return e.textrank.TopWithScores(k), nil
	case AlgoYAKE:
		if e.yake == nil {
			return nil, notBuilt(algo)
		}
		return e.yake.TopWithScores(k), nil
	case AlgoSimplifiedYAKE:
		if e.simplifiedyake == nil {
			return nil, notBuilt(algo)
		}
		return e.simplifiedyake.TopWithScores(k), nil
	default:
		return nil, fmt.Errorf("keywords: %w", &ConfigError{Field: "Algorithm", Value: algo, Msg: "unknown"})
	}
}

// CoOccurrence exposes the shared co-occurrence graph when Features
// includes CoOccurrence, for callers that want the raw adjacency rather
// than a ranked list.
func (e *Extractor) CoOccurrence() *cooccurrence.Graph {
	return e.cooc
}

func notBuilt(algo Algorithm) error {
	return fmt.Errorf("keywords: %w", &ConfigError{Field: "Algorithm", Value: algo.String(), Msg: "not included in Features at construction"})
}
