package codec

import (
	"encoding/hex"
	"fmt"
)

// Hex decodes pairs of case-insensitive hexadecimal digits.
type Hex struct{}

// NewHex returns the hexadecimal codec.
func NewHex() *Hex { return &Hex{} }

// Name implements Codec.
func (*Hex) Name() string { return "hex" }

// Label implements Codec.
func (*Hex) Label() string { return "Hexadecimal" }

// Decode implements Codec.
func (*Hex) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	err := scan(raw, func(pos int, r rune) error {
		if !isHexDigit(r) {
			return &SyntaxError{Reason: "invalid hex digit", Char: r, Position: pos}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, &LengthError{Reason: "odd number of hex digits", Length: len(raw)}
	}
	decoded, err := hex.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("malformed hex: %w", err)
	}
	return decoded, nil
}
