package analysis

import (
	"io"
	"log/slog"

	"github.com/nao1215/sigdec/internal/codec"
	"github.com/nao1215/sigdec/internal/model"
)

// Analyzer runs the analysis pipeline with fixed options.
// It is safe for concurrent use.
type Analyzer struct {
	settings settings
	bank     *codec.Bank
	cache    *memo
	logger   *slog.Logger
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	logger := s.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	a := &Analyzer{
		settings: s,
		bank: codec.NewBank(
			codec.WithCodecs(s.codecs...),
			codec.WithPreviewLimit(s.previewLimit),
		),
		logger: logger,
	}
	if s.cacheSize > 0 {
		a.cache = newMemo(s.cacheSize)
	}
	return a
}

// Analyze builds the report of a single input with default options.
func Analyze(input string, opts ...Option) *model.Report {
	return New(opts...).Analyze(input)
}

// Analyze builds the report of input. With a cache enabled, repeated
// inputs return the same report value, which callers must not modify.
func (a *Analyzer) Analyze(input string) *model.Report {
	fingerprint := Fingerprint(input)

	if a.cache != nil {
		if report, ok := a.cache.get(fingerprint); ok {
			a.logger.Debug("analysis cache hit",
				"fingerprint", shortFingerprint(fingerprint),
				"input", input,
			)
			return report
		}
	}

	report := a.build(input, fingerprint)
	a.logger.Debug("analysis complete",
		"fingerprint", shortFingerprint(fingerprint),
		"input", input,
		"length", report.Length,
		"entropy", report.Entropy,
		"insights", len(report.Insights),
	)

	if a.cache != nil {
		a.cache.put(fingerprint, report)
	}
	return report
}

// Decode runs only the decoder bank against input.
func (a *Analyzer) Decode(input string) []model.EncodingAttempt {
	return a.bank.AttemptString(input)
}

// CacheStats returns memo cache usage; the zero value when no cache is set.
func (a *Analyzer) CacheStats() CacheStats {
	if a.cache == nil {
		return CacheStats{}
	}
	return a.cache.stats()
}

func (a *Analyzer) build(input, fingerprint string) *model.Report {
	points := Decompose(input)
	stats := Aggregate(points)

	scan := runes(points)
	if len(scan) > a.settings.patternScanLimit {
		scan = scan[:a.settings.patternScanLimit]
	}
	patterns := DetectPatterns(scan, a.settings.minPatternLength, a.settings.maxPatterns)

	return &model.Report{
		Input:             input,
		Fingerprint:       fingerprint,
		Length:            stats.Length,
		UniqueCharacters:  stats.UniqueCharacters,
		Entropy:           stats.Entropy,
		PrintableRatio:    stats.PrintableRatio,
		Categories:        stats.Categories,
		MinCodePoint:      stats.MinCodePoint,
		MaxCodePoint:      stats.MaxCodePoint,
		ASCIIOnly:         stats.ASCIIOnly,
		Characters:        Describe(points),
		Frequencies:       RankFrequencies(points),
		Insights:          GenerateInsights(input, stats, patterns, a.settings.thresholds),
		RepeatingPatterns: patterns,
		Encodings:         a.bank.AttemptString(input),
	}
}

func shortFingerprint(fingerprint string) string {
	const n = 12
	if len(fingerprint) > n {
		return fingerprint[:n]
	}
	return fingerprint
}
