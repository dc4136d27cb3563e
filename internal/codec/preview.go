package codec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultPreviewLimit is the number of decoded bytes rendered in a preview.
	DefaultPreviewLimit = 200

	// Placeholder replaces bytes that cannot be shown as text.
	Placeholder = '·'
)

// Preview renders decoded bytes as text. Valid printable UTF-8 sequences are
// kept; control characters and invalid bytes become Placeholder. Only the
// first limit bytes are rendered, minus a trailing character the limit would
// split; truncated reports whether bytes were cut. A non-positive limit
// renders everything.
func Preview(b []byte, limit int) (preview string, truncated bool) {
	if limit > 0 && len(b) > limit {
		b = b[:runeBoundary(b, limit)]
		truncated = true
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if (r == utf8.RuneError && size == 1) || !unicode.IsPrint(r) {
			sb.WriteRune(Placeholder)
		} else {
			sb.WriteRune(r)
		}
		b = b[size:]
	}
	return sb.String(), truncated
}

// runeBoundary returns the cut position at or before limit that does not
// split a valid UTF-8 sequence. len(b) must exceed limit.
func runeBoundary(b []byte, limit int) int {
	for i := limit - 1; i >= 0 && i > limit-utf8.UTFMax; i-- {
		if !utf8.RuneStart(b[i]) {
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return limit
		}
		if i+size > limit {
			return i
		}
		return limit
	}
	return limit
}
