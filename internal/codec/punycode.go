package codec

import (
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

// punycodePrefix is the ACE prefix marking an IDNA encoded label.
const punycodePrefix = "xn--"

// Punycode converts IDNA xn-- labels (e.g. "xn--bcher-kva.example") back to
// Unicode. Labels without the prefix are kept as they are.
type Punycode struct {
	profile *idna.Profile
}

// NewPunycode returns the Punycode codec.
func NewPunycode() *Punycode {
	return &Punycode{profile: idna.Punycode}
}

// Name implements Codec.
func (*Punycode) Name() string { return "punycode" }

// Label implements Codec.
func (*Punycode) Label() string { return "Punycode (IDNA)" }

// Decode implements Codec.
func (p *Punycode) Decode(raw []byte) ([]byte, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyInput
	}
	input := string(raw)
	if !strings.Contains(strings.ToLower(input), punycodePrefix) {
		return nil, ErrNoPunycodeLabels
	}
	decoded, err := p.profile.ToUnicode(input)
	if err != nil {
		return nil, fmt.Errorf("malformed punycode: %w", err)
	}
	if decoded == input {
		return nil, ErrNoPunycodeLabels
	}
	return []byte(decoded), nil
}
