package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/sigdec/internal/analysis"
	"github.com/nao1215/sigdec/internal/codec"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sigdec"

	// DefaultTop is the number of frequency rows shown by the writers.
	DefaultTop = 8

	// DefaultBatchSize is the number of inputs analyzed concurrently.
	DefaultBatchSize = 4

	// DefaultCacheSize bounds the memo cache used for batch runs, where the
	// same line often appears more than once.
	DefaultCacheSize = 256
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Analysis holds the engine tunables. The same struct is used for the
// defaults and profiles of the configuration file, where a zero value
// (nil for pointer fields) means "not set".
type Analysis struct {
	// MinPatternLength is the shortest repeating fragment reported.
	MinPatternLength int `yaml:"minPatternLength,omitempty"`

	// MaxPatterns caps the number of repeating fragments reported. 0 disables
	// detection; nil leaves the value it is merged over unchanged.
	MaxPatterns *int `yaml:"maxPatterns,omitempty"`

	// PatternScanLimit is the number of leading code points scanned for
	// repeating fragments.
	PatternScanLimit int `yaml:"patternScanLimit,omitempty"`

	// PreviewLimit is the byte length of decoded previews.
	PreviewLimit int `yaml:"previewLimit,omitempty"`

	// EntropyThreshold is the entropy at which input is reported as random.
	EntropyThreshold float64 `yaml:"entropyThreshold,omitempty"`

	// LowEntropyThreshold is the entropy below which input is reported as
	// repetitive.
	LowEntropyThreshold float64 `yaml:"lowEntropyThreshold,omitempty"`

	// Top is the number of frequency rows shown. 0 shows every row; nil
	// leaves the value it is merged over unchanged.
	Top *int `yaml:"top,omitempty"`

	// Codecs restricts the decoder bank. Empty means every codec.
	Codecs []string `yaml:"codecs,omitempty"`
}

// DefaultAnalysis returns the built-in tunables.
func DefaultAnalysis() Analysis {
	return Analysis{
		MinPatternLength:    analysis.DefaultMinPatternLength,
		MaxPatterns:         IntPtr(analysis.DefaultMaxPatterns),
		PatternScanLimit:    analysis.DefaultPatternScanLimit,
		PreviewLimit:        codec.DefaultPreviewLimit,
		EntropyThreshold:    analysis.DefaultHighEntropy,
		LowEntropyThreshold: analysis.DefaultLowEntropy,
		Top:                 IntPtr(DefaultTop),
	}
}

// IntPtr returns a pointer to v for the optional Analysis fields.
func IntPtr(v int) *int {
	return &v
}

// TopValue returns Top, or DefaultTop when unset.
func (a Analysis) TopValue() int {
	if a.Top == nil {
		return DefaultTop
	}
	return *a.Top
}

// MaxPatternsValue returns MaxPatterns, or the engine default when unset.
func (a Analysis) MaxPatternsValue() int {
	if a.MaxPatterns == nil {
		return analysis.DefaultMaxPatterns
	}
	return *a.MaxPatterns
}

// Merge returns a copy of a with the set fields of over applied. Plain
// fields count as set when non-zero, pointer fields when non-nil.
func (a Analysis) Merge(over Analysis) Analysis {
	result := a
	if over.MinPatternLength != 0 {
		result.MinPatternLength = over.MinPatternLength
	}
	if over.MaxPatterns != nil {
		result.MaxPatterns = IntPtr(*over.MaxPatterns)
	}
	if over.PatternScanLimit != 0 {
		result.PatternScanLimit = over.PatternScanLimit
	}
	if over.PreviewLimit != 0 {
		result.PreviewLimit = over.PreviewLimit
	}
	if over.EntropyThreshold != 0 {
		result.EntropyThreshold = over.EntropyThreshold
	}
	if over.LowEntropyThreshold != 0 {
		result.LowEntropyThreshold = over.LowEntropyThreshold
	}
	if over.Top != nil {
		result.Top = IntPtr(*over.Top)
	}
	if len(over.Codecs) > 0 {
		result.Codecs = append([]string(nil), over.Codecs...)
	}
	return result
}

// Config holds all options of one sigdec invocation. It is populated from
// CLI flags and the configuration file and passed down explicitly.
type Config struct {
	// Inputs are the strings to analyze, in output order.
	Inputs []string

	// ListFile is a file holding one input per line.
	ListFile string

	// Verbose enables debug logging.
	Verbose bool

	// BatchSize is the number of inputs analyzed concurrently.
	BatchSize int

	// ConfigFilePath is an explicit configuration file path. When empty the
	// file is searched for with FindConfigFile.
	ConfigFilePath string

	// Profile names the configuration file profile to apply.
	Profile string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output path; stdout when empty.
	ReportFile string

	// Color is the text writer colour mode: auto, always or never.
	Color string

	// ShowCharacters adds the per code point table to text output.
	ShowCharacters bool

	// Analysis holds the engine tunables.
	Analysis Analysis
}

// NewConfig creates a Config holding the default values.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
		Color:     ColorAuto,
		Analysis:  DefaultAnalysis(),
	}
}

// XDGConfigDir returns the XDG config directory for sigdec.
// On Linux: ~/.config/sigdec
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 && c.ListFile == "" {
		return ErrNoInput
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Color)
	}
	return c.Analysis.Validate()
}

// Validate checks the engine tunables.
func (a Analysis) Validate() error {
	if a.TopValue() < 0 {
		return ErrInvalidTop
	}
	if a.MinPatternLength < 1 {
		return ErrInvalidPatternLength
	}
	if a.MaxPatternsValue() < 0 {
		return ErrInvalidMaxPatterns
	}
	if a.PatternScanLimit <= 0 {
		return ErrInvalidPatternScanLimit
	}
	if a.PreviewLimit <= 0 {
		return ErrInvalidPreviewLimit
	}
	if a.EntropyThreshold <= 0 || a.LowEntropyThreshold <= 0 {
		return ErrInvalidThreshold
	}
	if _, err := codec.Select(a.Codecs); err != nil {
		return err
	}
	return nil
}

// AnalyzerOptions converts the tunables into analysis options.
// Validate must have succeeded.
func (a Analysis) AnalyzerOptions() ([]analysis.Option, error) {
	codecs, err := codec.Select(a.Codecs)
	if err != nil {
		return nil, err
	}
	return []analysis.Option{
		analysis.WithMinPatternLength(a.MinPatternLength),
		analysis.WithMaxPatterns(a.MaxPatternsValue()),
		analysis.WithPatternScanLimit(a.PatternScanLimit),
		analysis.WithPreviewLimit(a.PreviewLimit),
		analysis.WithCodecs(codecs...),
		analysis.WithThresholds(analysis.Thresholds{
			HighEntropy: a.EntropyThreshold,
			LowEntropy:  a.LowEntropyThreshold,
		}),
	}, nil
}
