package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/nao1215/sigdec/internal/model"
)

// Codec is one decoding strategy of the decoder bank.
type Codec interface {
	// Name is the short identifier used on the command line, e.g. "hex".
	Name() string

	// Label is the human readable name stored in EncodingAttempt.Label.
	Label() string

	// Decode validates raw against the codec grammar and returns the
	// decoded bytes. The error message is shown to the user verbatim.
	Decode(raw []byte) ([]byte, error)
}

// Describer is implemented by codecs that word their own success message.
type Describer interface {
	Describe(raw, decoded []byte) string
}

// Default returns the codecs of the default bank in evaluation order.
// Every call returns fresh values.
func Default() []Codec {
	return []Codec{
		NewBase64(),
		NewBase64URL(),
		NewHex(),
		NewPercent(),
		NewUTF8(),
		NewPunycode(),
	}
}

// Names returns the names of the default codecs in evaluation order.
func Names() []string {
	codecs := Default()
	names := make([]string, len(codecs))
	for i, c := range codecs {
		names[i] = c.Name()
	}
	return names
}

// Lookup returns the default codec with the given name.
func Lookup(name string) (Codec, bool) {
	for _, c := range Default() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Select returns the named codecs in canonical evaluation order,
// regardless of the order of names. Duplicates are ignored.
// An empty names slice selects every codec.
func Select(names []string) ([]Codec, error) {
	if len(names) == 0 {
		return Default(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownCodec, name, Names())
		}
		wanted[name] = true
	}

	selected := make([]Codec, 0, len(wanted))
	for _, c := range Default() {
		if wanted[c.Name()] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}

// Bank runs a fixed, ordered list of codecs against raw input.
type Bank struct {
	// codecs are attempted in slice order.
	codecs []Codec

	// previewLimit bounds the number of bytes rendered in previews.
	previewLimit int
}

// Option configures a Bank.
type Option func(*Bank)

// WithCodecs replaces the default codec list.
func WithCodecs(codecs ...Codec) Option {
	return func(b *Bank) {
		b.codecs = codecs
	}
}

// WithPreviewLimit sets the number of decoded bytes rendered in previews.
func WithPreviewLimit(limit int) Option {
	return func(b *Bank) {
		if limit > 0 {
			b.previewLimit = limit
		}
	}
}

// NewBank creates a Bank with the default codecs.
func NewBank(opts ...Option) *Bank {
	b := &Bank{
		codecs:       Default(),
		previewLimit: DefaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Codecs returns the codecs of the bank in evaluation order.
func (b *Bank) Codecs() []Codec {
	out := make([]Codec, len(b.codecs))
	copy(out, b.codecs)
	return out
}

// Attempt runs every codec against raw and returns one attempt per codec
// in evaluation order.
func (b *Bank) Attempt(raw []byte) []model.EncodingAttempt {
	attempts := make([]model.EncodingAttempt, 0, len(b.codecs))
	for _, c := range b.codecs {
		attempts = append(attempts, b.attempt(c, raw))
	}
	return attempts
}

// AttemptString is Attempt for a string input.
func (b *Bank) AttemptString(s string) []model.EncodingAttempt {
	return b.Attempt([]byte(s))
}

// attempt runs a single codec. The codec sees its own copy of the input.
func (b *Bank) attempt(c Codec, raw []byte) model.EncodingAttempt {
	input := make([]byte, len(raw))
	copy(input, raw)

	decoded, err := c.Decode(input)
	if err != nil {
		return model.NewFailedAttempt(c.Label(), err.Error())
	}

	preview, truncated := Preview(decoded, b.previewLimit)
	message := fmt.Sprintf("Decoded %d byte(s).", len(decoded))
	if d, ok := c.(Describer); ok {
		message = d.Describe(raw, decoded)
	}

	return model.EncodingAttempt{
		Label:   c.Label(),
		Success: true,
		Message: message,
		Output: &model.DecodedOutput{
			ByteLength: len(decoded),
			Hex:        hex.EncodeToString(decoded),
			Preview:    preview,
			Truncated:  truncated,
		},
		Bytes: decoded,
	}
}
