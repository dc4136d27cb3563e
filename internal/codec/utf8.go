package codec

import (
	"fmt"
	"unicode/utf8"
)

// UTF8 is the passthrough baseline: the input bytes are returned unchanged.
// It always succeeds, even for empty input.
type UTF8 struct{}

// NewUTF8 returns the UTF-8 passthrough codec.
func NewUTF8() *UTF8 { return &UTF8{} }

// Name implements Codec.
func (*UTF8) Name() string { return "utf8" }

// Label implements Codec.
func (*UTF8) Label() string { return "UTF-8 text" }

// Decode implements Codec.
func (*UTF8) Decode(raw []byte) ([]byte, error) {
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Describe implements Describer.
func (*UTF8) Describe(_, decoded []byte) string {
	if len(decoded) == 0 {
		return "Empty input is valid UTF-8 (0 bytes)."
	}
	if invalid := countInvalidUTF8(decoded); invalid > 0 {
		return fmt.Sprintf("Contains %d invalid UTF-8 sequence(s); shown with placeholders.", invalid)
	}
	return fmt.Sprintf("Well-formed UTF-8 text: %d code point(s) in %d byte(s).",
		utf8.RuneCount(decoded), len(decoded))
}

// countInvalidUTF8 counts the bytes that do not start a valid UTF-8 sequence.
func countInvalidUTF8(b []byte) int {
	invalid := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size == 1 {
			invalid++
		}
		b = b[size:]
	}
	return invalid
}
