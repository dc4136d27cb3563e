// Package codec implements the decoder bank: a fixed, ordered set of
// text and binary codecs that are attempted against the raw input to see
// whether it is a disguised byte sequence.
//
// Each Codec validates the input against its own grammar and either
// returns the decoded bytes or a descriptive error. The Bank turns those
// results into model.EncodingAttempt values. Codecs share no state, so a
// failure in one never affects another, and the order of the attempts in
// a report always matches the order of the bank.
//
// The default bank, in order:
//   - Base64 (standard alphabet, padding required)
//   - Base64 (URL-safe alphabet, padding optional)
//   - Hexadecimal
//   - URL percent-encoding
//   - UTF-8 text (always succeeds, baseline row)
//   - Punycode (IDNA xn-- labels)
package codec
