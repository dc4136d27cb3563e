package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaskValue replaces values whose key or content marks them as secret.
const MaskValue = "***REDACTED***"

// inputKeys name attributes that carry user input.
// Their values are summarised, never printed.
var inputKeys = map[string]bool{
	"input":   true,
	"inputs":  true,
	"value":   true,
	"line":    true,
	"decoded": true,
	"preview": true,
	"left":    true,
	"right":   true,
}

// secretKeywords mark attribute keys whose values are always masked.
var secretKeywords = []string{
	"password", "passwd", "secret", "token", "auth",
	"credential", "private", "api_key", "apikey", "cookie", "session",
}

// secretPatterns match values that look like credentials regardless of key.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`),
	regexp.MustCompile(`(?i)^(bearer|basic)\s+\S+`),
	regexp.MustCompile(`^[A-Za-z0-9+/_-]{32,}={0,2}$`),
	regexp.MustCompile(`^AKIA[0-9A-Z]{16}$`),
	regexp.MustCompile(`(?i)-----BEGIN.*(PRIVATE|SECRET).*KEY-----`),
}

// RedactingHandler wraps an slog.Handler and rewrites attributes that may
// hold analysed input or secrets before they reach the wrapped handler.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler wraps handler. A nil handler wraps slog.Default().Handler().
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactingHandler{handler: handler}
}

// Enabled implements slog.Handler.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *RedactingHandler) Handle(ctx context.Context, r slog.Record) error {
	redacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		redacted.AddAttrs(redactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, redacted)
}

// WithAttrs implements slog.Handler.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(redacted)}
}

// WithGroup implements slog.Handler.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		redacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			redacted[i] = redactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}
	}

	key := strings.ToLower(a.Key)
	switch {
	case inputKeys[key]:
		return slog.String(a.Key, Summarize(a.Value))
	case isSecretKey(key):
		return slog.String(a.Key, MaskValue)
	case a.Value.Kind() == slog.KindString && IsSecretValue(a.Value.String()):
		return slog.String(a.Key, MaskValue)
	}
	return a
}

// Summarize describes a value without revealing it.
func Summarize(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return fmt.Sprintf("[redacted: %d code points]", utf8.RuneCountInString(v.String()))
	case slog.KindAny:
		if list, ok := v.Any().([]string); ok {
			return fmt.Sprintf("[redacted: %d values]", len(list))
		}
	}
	return MaskValue
}

func isSecretKey(key string) bool {
	for _, keyword := range secretKeywords {
		if strings.Contains(key, keyword) {
			return true
		}
	}
	return false
}

// IsSecretValue reports whether s looks like a credential.
func IsSecretValue(s string) bool {
	for _, p := range secretPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// NewLogger returns a text logger on w that redacts input and secrets.
// verbose lowers the level from Warn to Debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger is NewLogger with JSON output.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewRedactingHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
