package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by every codec except UTF-8 for empty input.
	ErrEmptyInput = errors.New("input is empty")

	// ErrUnknownCodec is returned by Select for a name that is not registered.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrNoEscapes is returned by the percent codec when the input holds no
	// %XX escape at all.
	ErrNoEscapes = errors.New("no percent-encoded sequences found")

	// ErrNoPunycodeLabels is returned by the punycode codec when no label
	// starts with the xn-- prefix.
	ErrNoPunycodeLabels = errors.New("no xn-- labels found")
)

// SyntaxError reports a character that violates a codec grammar.
type SyntaxError struct {
	// Reason describes the violated rule, e.g. "invalid hex digit".
	Reason string
	// Char is the offending character.
	Char rune
	// Position is the code point index of Char in the input.
	Position int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s %q at position %d", e.Reason, e.Char, e.Position)
}

// LengthError reports an input whose length the codec cannot accept.
type LengthError struct {
	// Reason describes the violated rule.
	Reason string
	// Length is the length that was rejected.
	Length int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Reason, e.Length)
}
