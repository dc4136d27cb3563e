package model

// EncodingAttempt is the outcome of trying one codec against the raw input.
// A failed attempt carries only Label, Success and Message.
type EncodingAttempt struct {
	// Label is the codec name, e.g. "Base64 (standard)".
	Label string `json:"label"`

	// Success reports whether the input conformed to the codec grammar.
	Success bool `json:"success"`

	// Message explains the outcome. For failures it names the offending
	// character or length problem.
	Message string `json:"message"`

	// Output holds the decoded data. It is nil when Success is false.
	Output *DecodedOutput `json:"output,omitempty"`

	// Bytes is the decoded byte sequence. It is nil when Success is false.
	Bytes []byte `json:"-"`
}

// DecodedOutput describes the bytes produced by a successful decode.
type DecodedOutput struct {
	// ByteLength is the number of decoded bytes.
	ByteLength int `json:"byte_length"`

	// Hex is the decoded bytes as lowercase hex, two digits per byte.
	Hex string `json:"hex"`

	// Preview is the decoded bytes read as text with non-printable bytes
	// replaced by a placeholder glyph.
	Preview string `json:"preview"`

	// Truncated is true when Preview covers only a prefix of the bytes.
	Truncated bool `json:"truncated,omitempty"`
}

// NewFailedAttempt returns an attempt that did not decode.
func NewFailedAttempt(label, message string) EncodingAttempt {
	return EncodingAttempt{
		Label:   label,
		Success: false,
		Message: message,
	}
}

// Decoded reports whether the attempt produced output.
func (a EncodingAttempt) Decoded() bool {
	return a.Success && a.Output != nil
}
