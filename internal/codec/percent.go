package codec

import (
	"fmt"
	"net/url"
)

// Percent decodes URL percent-encoding. %XX escapes are replaced by the
// byte they encode and every other character passes through unchanged,
// including '+'.
type Percent struct{}

// NewPercent returns the percent-encoding codec.
func NewPercent() *Percent { return &Percent{} }

// Name implements Codec.
func (*Percent) Name() string { return "percent" }

// Label implements Codec.
func (*Percent) Label() string { return "URL percent-encoding" }

// Decode implements Codec.
func (*Percent) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}

	escapes := 0
	pending := 0 // hex digits still expected after a '%'
	escapeStart := 0
	err := scan(raw, func(pos int, r rune) error {
		if pending > 0 {
			if !isHexDigit(r) {
				return &SyntaxError{Reason: "malformed percent escape: expected hex digit, got", Char: r, Position: pos}
			}
			pending--
			return nil
		}
		if r == '%' {
			escapes++
			pending = 2
			escapeStart = pos
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, &SyntaxError{Reason: "incomplete percent escape", Char: '%', Position: escapeStart}
	}
	if escapes == 0 {
		return nil, ErrNoEscapes
	}

	decoded, err := url.PathUnescape(string(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed percent encoding: %w", err)
	}
	return []byte(decoded), nil
}
