package codec

import "unicode/utf8"

// scan calls fn for every code point of raw together with its code point
// index, stopping at the first error fn returns. Invalid UTF-8 bytes are
// passed as utf8.RuneError.
func scan(raw []byte, fn func(pos int, r rune) error) error {
	pos := 0
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if err := fn(pos, r); err != nil {
			return err
		}
		raw = raw[size:]
		pos++
	}
	return nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func isAlphanumeric(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}
