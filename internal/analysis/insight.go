package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/nao1215/sigdec/internal/model"
)

// Default insight thresholds.
const (
	// DefaultHighEntropy is the entropy at or above which input looks random.
	DefaultHighEntropy = 4.5
	// DefaultLowEntropy is the entropy below which input looks repetitive.
	DefaultLowEntropy = 2.0
	// lowEntropyMinLength keeps very short inputs out of the low entropy rule.
	lowEntropyMinLength = 8
	// base64MinLength keeps very short inputs out of the Base64 rule.
	base64MinLength = 8
	// canonicalUUIDLength is the length of xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
	canonicalUUIDLength = 36
)

// Thresholds are the tunable limits of the entropy rules.
type Thresholds struct {
	HighEntropy float64
	LowEntropy  float64
}

// DefaultThresholds returns the built-in entropy thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{HighEntropy: DefaultHighEntropy, LowEntropy: DefaultLowEntropy}
}

// digestNames maps hex digest lengths to the hash that produces them.
var digestNames = map[int]string{
	32:  "MD5",
	40:  "SHA-1",
	64:  "SHA-256",
	128: "SHA-512",
}

// insightContext is everything a rule may look at.
type insightContext struct {
	input      string
	stats      Statistics
	patterns   []string
	thresholds Thresholds
}

// insightRule is one row of the insight table.
type insightRule struct {
	name    string
	matches func(*insightContext) bool
	message func(*insightContext) string
}

// insightRules is evaluated in order; each matching rule adds one message.
var insightRules = []insightRule{
	{
		name:    "empty",
		matches: func(c *insightContext) bool { return c.stats.Length == 0 },
		message: func(*insightContext) string { return "Input is empty; nothing to analyze." },
	},
	{
		name: "high-entropy",
		matches: func(c *insightContext) bool {
			return c.stats.Length > 0 && c.stats.Entropy >= c.thresholds.HighEntropy
		},
		message: func(c *insightContext) string {
			return fmt.Sprintf("High entropy (%.2f bits/symbol): looks random or machine generated.", c.stats.Entropy)
		},
	},
	{
		name: "low-entropy",
		matches: func(c *insightContext) bool {
			return c.stats.Length >= lowEntropyMinLength && c.stats.Entropy < c.thresholds.LowEntropy
		},
		message: func(c *insightContext) string {
			return fmt.Sprintf("Low entropy (%.2f bits/symbol): content is highly repetitive.", c.stats.Entropy)
		},
	},
	{
		name: "hex-digest",
		matches: func(c *insightContext) bool {
			_, ok := digestNames[c.stats.Length]
			return ok && isAllHex(c.input)
		},
		message: func(c *insightContext) string {
			return fmt.Sprintf("Length and alphabet match a %s digest (%d hex characters).",
				digestNames[c.stats.Length], c.stats.Length)
		},
	},
	{
		name: "uuid",
		matches: func(c *insightContext) bool {
			_, ok := parseCanonicalUUID(c.input)
			return ok
		},
		message: func(c *insightContext) string {
			u, _ := parseCanonicalUUID(c.input)
			return fmt.Sprintf("Matches the canonical UUID layout (version %d, %s variant).",
				int(u.Version()), u.Variant())
		},
	},
	{
		name: "base64-alphabet",
		matches: func(c *insightContext) bool {
			return c.stats.Length >= base64MinLength &&
				c.stats.Length%4 == 0 &&
				isBase64Shaped(c.input) &&
				!isAllHex(c.input)
		},
		message: func(*insightContext) string {
			return "Uses only the Base64 alphabet with a length divisible by 4; may be Base64 encoded."
		},
	},
	{
		name: "identifier",
		matches: func(c *insightContext) bool {
			return c.stats.Categories[model.CategoryWhitespace] == 0 &&
				hasInnerSeparator(c.input)
		},
		message: func(*insightContext) string {
			return "Contains - or _ separators between alphanumerics; resembles an identifier or slug."
		},
	},
	{
		name: "mixed-case",
		matches: func(c *insightContext) bool {
			return c.stats.Categories[model.CategoryUppercase] > 0 &&
				c.stats.Categories[model.CategoryLowercase] > 0 &&
				c.stats.Categories[model.CategoryDigit] > 0
		},
		message: func(*insightContext) string {
			return "Mixes upper and lower case letters with digits, typical of generated tokens."
		},
	},
	{
		name:    "non-ascii",
		matches: func(c *insightContext) bool { return !c.stats.ASCIIOnly },
		message: func(c *insightContext) string {
			return fmt.Sprintf("Contains %d code point(s) outside ASCII (highest %s).",
				c.stats.NonASCII, HexCode(rune(*c.stats.MaxCodePoint)))
		},
	},
	{
		name:    "non-printable",
		matches: func(c *insightContext) bool { return c.stats.Controls > 0 },
		message: func(c *insightContext) string {
			return fmt.Sprintf("Contains %d non-printable control character(s).", c.stats.Controls)
		},
	},
	{
		name:    "whitespace",
		matches: func(c *insightContext) bool { return c.stats.Categories[model.CategoryWhitespace] > 0 },
		message: func(c *insightContext) string {
			return fmt.Sprintf("Contains %d whitespace character(s); may be free text rather than a single token.",
				c.stats.Categories[model.CategoryWhitespace])
		},
	},
	{
		name:    "repeating",
		matches: func(c *insightContext) bool { return len(c.patterns) > 0 },
		message: func(c *insightContext) string {
			return fmt.Sprintf("Contains repeating fragments; the longest is %q.", c.patterns[0])
		},
	},
}

// InsightNames returns the rule names in evaluation order.
func InsightNames() []string {
	names := make([]string, len(insightRules))
	for i, rule := range insightRules {
		names[i] = rule.name
	}
	return names
}

// GenerateInsights evaluates the insight table against one analysed input.
// The result is never nil.
func GenerateInsights(input string, stats Statistics, patterns []string, thresholds Thresholds) []string {
	ctx := &insightContext{
		input:      input,
		stats:      stats,
		patterns:   patterns,
		thresholds: thresholds,
	}

	insights := make([]string, 0)
	for _, rule := range insightRules {
		if rule.matches(ctx) {
			insights = append(insights, rule.message(ctx))
		}
	}
	return insights
}

func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	if len(s) != canonicalUUIDLength {
		return uuid.Nil, false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// hasInnerSeparator reports whether a '-' or '_' sits directly between two
// letters or digits.
func hasInnerSeparator(s string) bool {
	rs := []rune(s)
	for i := 1; i+1 < len(rs); i++ {
		if rs[i] != '-' && rs[i] != '_' {
			continue
		}
		if isAlphanumeric(rs[i-1]) && isAlphanumeric(rs[i+1]) {
			return true
		}
	}
	return false
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isAllHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// isBase64Shaped reports whether s uses only the standard Base64 alphabet,
// with at most two '=' and only at the end.
func isBase64Shaped(s string) bool {
	body := strings.TrimRight(s, "=")
	if len(s)-len(body) > 2 || body == "" {
		return false
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9', c == '+', c == '/':
		default:
			return false
		}
	}
	return true
}
