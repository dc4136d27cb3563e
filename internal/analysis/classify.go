package analysis

import (
	"unicode"

	"github.com/nao1215/sigdec/internal/model"
)

// classRule maps a predicate to the category it assigns.
type classRule struct {
	matches  func(rune) bool
	category model.Category
}

// classRules is evaluated top to bottom; the first match wins and
// CategoryOther catches whatever is left.
var classRules = []classRule{
	{matches: func(r rune) bool { return '0' <= r && r <= '9' }, category: model.CategoryDigit},
	{matches: func(r rune) bool { return 'A' <= r && r <= 'Z' }, category: model.CategoryUppercase},
	{matches: func(r rune) bool { return 'a' <= r && r <= 'z' }, category: model.CategoryLowercase},
	{matches: unicode.IsSpace, category: model.CategoryWhitespace},
	{matches: isASCIISymbol, category: model.CategorySymbol},
}

// Classify returns the category of a single code point.
func Classify(r rune) model.Category {
	for _, rule := range classRules {
		if rule.matches(r) {
			return rule.category
		}
	}
	return model.CategoryOther
}

// isASCIISymbol reports whether r is printable ASCII punctuation or a symbol.
func isASCIISymbol(r rune) bool {
	switch {
	case 0x21 <= r && r <= 0x2F:
		return true
	case 0x3A <= r && r <= 0x40:
		return true
	case 0x5B <= r && r <= 0x60:
		return true
	case 0x7B <= r && r <= 0x7E:
		return true
	default:
		return false
	}
}
