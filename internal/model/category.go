package model

import "fmt"

// Category is the character class assigned to a single code point.
// Every code point of an input maps to exactly one Category, so the
// per-category counts of a report always sum to its length.
type Category int

const (
	// CategoryDigit is an ASCII decimal digit (0-9).
	CategoryDigit Category = iota
	// CategoryUppercase is an ASCII upper-case letter (A-Z).
	CategoryUppercase
	// CategoryLowercase is an ASCII lower-case letter (a-z).
	CategoryLowercase
	// CategoryWhitespace is any Unicode white space, including tab and newline.
	CategoryWhitespace
	// CategorySymbol is printable ASCII punctuation or a symbol such as '-' or '$'.
	CategorySymbol
	// CategoryOther covers everything else: non-ASCII letters, control
	// characters, emoji and combining marks.
	CategoryOther
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryUppercase,
		CategoryLowercase,
		CategoryDigit,
		CategoryWhitespace,
		CategorySymbol,
		CategoryOther,
	}
}

// String returns the machine name used in JSON output.
func (c Category) String() string {
	switch c {
	case CategoryDigit:
		return "digit"
	case CategoryUppercase:
		return "uppercase"
	case CategoryLowercase:
		return "lowercase"
	case CategoryWhitespace:
		return "whitespace"
	case CategorySymbol:
		return "symbol"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// Label returns the human readable name shown by the report writers.
func (c Category) Label() string {
	switch c {
	case CategoryDigit:
		return "Digits"
	case CategoryUppercase:
		return "Uppercase"
	case CategoryLowercase:
		return "Lowercase"
	case CategoryWhitespace:
		return "Whitespace"
	case CategorySymbol:
		return "Punctuation & symbols"
	case CategoryOther:
		return "Other / Unicode"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so Category can be used as a
// JSON object key.
func (c Category) MarshalText() ([]byte, error) {
	if c < CategoryDigit || c > CategoryOther {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory converts a machine name back into a Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return CategoryOther, fmt.Errorf("unknown category %q", name)
}
