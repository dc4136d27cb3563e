package codec

import (
	"encoding/base64"
	"fmt"
)

// maxBase64Padding is the largest number of '=' characters a valid
// Base64 quantum can end with.
const maxBase64Padding = 2

// Base64 decodes the standard alphabet (A-Z a-z 0-9 + /) with mandatory
// '=' padding.
type Base64 struct{}

// NewBase64 returns the standard Base64 codec.
func NewBase64() *Base64 { return &Base64{} }

// Name implements Codec.
func (*Base64) Name() string { return "base64" }

// Label implements Codec.
func (*Base64) Label() string { return "Base64 (standard)" }

// Decode implements Codec.
func (*Base64) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	padding, err := checkBase64Alphabet(raw, isStdBase64)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, &LengthError{Reason: "length is not a multiple of 4", Length: len(raw)}
	}
	if padding == len(raw) {
		return nil, &LengthError{Reason: "input holds padding only", Length: len(raw)}
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed base64: %w", err)
	}
	return decoded, nil
}

// Base64URL decodes the URL-safe alphabet (A-Z a-z 0-9 - _). Padding is
// optional; when present the input must be a whole number of quanta.
type Base64URL struct{}

// NewBase64URL returns the URL-safe Base64 codec.
func NewBase64URL() *Base64URL { return &Base64URL{} }

// Name implements Codec.
func (*Base64URL) Name() string { return "base64url" }

// Label implements Codec.
func (*Base64URL) Label() string { return "Base64 (URL-safe)" }

// Decode implements Codec.
func (*Base64URL) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	padding, err := checkBase64Alphabet(raw, isURLBase64)
	if err != nil {
		return nil, err
	}
	if padding == len(raw) {
		return nil, &LengthError{Reason: "input holds padding only", Length: len(raw)}
	}

	encoding := base64.RawURLEncoding
	if padding > 0 {
		if len(raw)%4 != 0 {
			return nil, &LengthError{Reason: "padded length is not a multiple of 4", Length: len(raw)}
		}
		encoding = base64.URLEncoding
	} else if len(raw)%4 == 1 {
		return nil, &LengthError{Reason: "truncated input: a single trailing character cannot encode a byte", Length: len(raw)}
	}

	decoded, err := encoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed base64url: %w", err)
	}
	return decoded, nil
}

// checkBase64Alphabet verifies that raw consists of alphabet characters
// followed by at most two '=' characters. It returns the padding length.
func checkBase64Alphabet(raw []byte, inAlphabet func(rune) bool) (int, error) {
	padding := 0
	err := scan(raw, func(pos int, r rune) error {
		if r == '=' {
			padding++
			if padding > maxBase64Padding {
				return &SyntaxError{Reason: "too much base64 padding", Char: r, Position: pos}
			}
			return nil
		}
		if padding > 0 {
			return &SyntaxError{Reason: "misplaced base64 padding before character", Char: r, Position: pos}
		}
		if !inAlphabet(r) {
			return &SyntaxError{Reason: "invalid base64 alphabet character", Char: r, Position: pos}
		}
		return nil
	})
	return padding, err
}

func isStdBase64(r rune) bool {
	return isAlphanumeric(r) || r == '+' || r == '/'
}

func isURLBase64(r rune) bool {
	return isAlphanumeric(r) || r == '-' || r == '_'
}
