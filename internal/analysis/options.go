package analysis

import (
	"log/slog"

	"github.com/nao1215/sigdec/internal/codec"
)

// Default engine limits.
const (
	// DefaultMinPatternLength is the shortest repeating fragment reported.
	DefaultMinPatternLength = 2
	// DefaultMaxPatterns caps the number of repeating fragments reported.
	DefaultMaxPatterns = 6
	// DefaultPatternScanLimit is how many leading code points the pattern
	// detector examines.
	DefaultPatternScanLimit = 4096
)

// settings holds the resolved options of an Analyzer.
type settings struct {
	minPatternLength int
	maxPatterns      int
	patternScanLimit int
	previewLimit     int
	codecs           []codec.Codec
	thresholds       Thresholds
	cacheSize        int
	logger           *slog.Logger
}

func defaultSettings() settings {
	return settings{
		minPatternLength: DefaultMinPatternLength,
		maxPatterns:      DefaultMaxPatterns,
		patternScanLimit: DefaultPatternScanLimit,
		previewLimit:     codec.DefaultPreviewLimit,
		codecs:           codec.Default(),
		thresholds:       DefaultThresholds(),
	}
}

// Option configures an Analyzer.
type Option func(*settings)

// WithMinPatternLength sets the shortest repeating fragment to report.
// Values below 2 are raised to 2.
func WithMinPatternLength(n int) Option {
	return func(s *settings) {
		if n < minimumPatternLength {
			n = minimumPatternLength
		}
		s.minPatternLength = n
	}
}

// WithMaxPatterns caps the number of repeating fragments. Zero disables
// pattern detection.
func WithMaxPatterns(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.maxPatterns = n
		}
	}
}

// WithPatternScanLimit sets how many leading code points are scanned for
// patterns.
func WithPatternScanLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.patternScanLimit = n
		}
	}
}

// WithPreviewLimit sets the byte limit of decoded previews.
func WithPreviewLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.previewLimit = n
		}
	}
}

// WithCodecs restricts the decoder bank. An empty list keeps the default bank.
func WithCodecs(codecs ...codec.Codec) Option {
	return func(s *settings) {
		if len(codecs) > 0 {
			s.codecs = codecs
		}
	}
}

// WithThresholds overrides the entropy thresholds of the insight rules.
// Non-positive fields keep their defaults.
func WithThresholds(t Thresholds) Option {
	return func(s *settings) {
		if t.HighEntropy > 0 {
			s.thresholds.HighEntropy = t.HighEntropy
		}
		if t.LowEntropy > 0 {
			s.thresholds.LowEntropy = t.LowEntropy
		}
	}
}

// WithCache enables a memo cache holding up to size reports.
func WithCache(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.cacheSize = size
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}
