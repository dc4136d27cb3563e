// Package log builds the slog loggers used by sigdec.
//
// Strings handed to sigdec are often credentials or tokens pasted in for
// triage, so every logger created here wraps its output handler in a
// RedactingHandler. The handler replaces:
//   - attributes that carry analysed input (keys such as "input" or
//     "value") with a length summary like "[redacted: 12 code points]";
//   - attributes whose key names a secret ("token", "password", ...) with
//     MaskValue;
//   - string values that look like credentials (JWTs, bearer headers,
//     long alphanumerics, PEM private keys) with MaskValue.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("analysis complete", "input", s, "length", n)
package log
