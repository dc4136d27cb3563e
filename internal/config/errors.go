package config

import (
	"errors"

	"github.com/nao1215/sigdec/internal/codec"
)

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrNoInput is returned when neither arguments, --list nor stdin
	// provided a string to analyze.
	ErrNoInput = errors.New("no input specified: pass strings as arguments, use --list, or pipe to stdin")

	// ErrConflictingReportFormats is returned when both --json and --markdown are set.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidTop is returned when the frequency window is negative.
	ErrInvalidTop = errors.New("invalid top: must be zero (all) or positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidPatternLength is returned when the minimum pattern length is below 1.
	ErrInvalidPatternLength = errors.New("invalid minimum pattern length: must be positive")

	// ErrInvalidMaxPatterns is returned when the pattern cap is negative.
	ErrInvalidMaxPatterns = errors.New("invalid max patterns: must be non-negative")

	// ErrInvalidPatternScanLimit is returned when the pattern scan limit is not positive.
	ErrInvalidPatternScanLimit = errors.New("invalid pattern scan limit: must be positive")

	// ErrInvalidPreviewLimit is returned when the preview limit is not positive.
	ErrInvalidPreviewLimit = errors.New("invalid preview limit: must be positive")

	// ErrInvalidThreshold is returned when an entropy threshold is not positive.
	ErrInvalidThreshold = errors.New("invalid entropy threshold: must be positive")

	// ErrInvalidColorMode is returned for a --color value other than auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode: use auto, always or never")

	// ErrUnknownCodec is returned when a codec name is not part of the bank.
	ErrUnknownCodec = codec.ErrUnknownCodec

	// ErrUnknownProfile is returned when --profile names a profile the
	// configuration file does not define.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
