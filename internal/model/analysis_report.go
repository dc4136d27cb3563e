package model

// Report is the complete analysis of one input string.
// A Report is a snapshot: nothing in this module modifies it after the
// analysis engine returns it, and reports may be shared between goroutines.
type Report struct {
	// Input is the analyzed string.
	Input string `json:"input"`

	// Fingerprint is the hex encoded SHA3-256 digest of Input.
	Fingerprint string `json:"fingerprint"`

	// Length is the number of code points.
	Length int `json:"length"`

	// UniqueCharacters is the number of distinct code points.
	UniqueCharacters int `json:"unique_characters"`

	// Entropy is the Shannon entropy in bits per symbol.
	Entropy float64 `json:"entropy"`

	// PrintableRatio is the share of code points in the printable ASCII
	// range 0x20-0x7E, between 0 and 1.
	PrintableRatio float64 `json:"printable_ratio"`

	// Categories counts code points per category. All categories are
	// present, including those with a zero count.
	Categories map[Category]int `json:"categories"`

	// MinCodePoint is the smallest code point, nil for empty input.
	MinCodePoint *int `json:"min_code_point"`

	// MaxCodePoint is the largest code point, nil for empty input.
	MaxCodePoint *int `json:"max_code_point"`

	// ASCIIOnly is true when every code point is at most 127.
	ASCIIOnly bool `json:"ascii_only"`

	// Characters is the per code point breakdown in input order.
	Characters []CharacterDetail `json:"characters"`

	// Frequencies ranks distinct characters by count.
	Frequencies []FrequencyEntry `json:"frequencies"`

	// Insights are heuristic observations in rule order.
	Insights []string `json:"insights"`

	// RepeatingPatterns lists substrings occurring at least twice,
	// longest first.
	RepeatingPatterns []string `json:"repeating_patterns"`

	// Encodings holds one attempt per codec in evaluation order.
	Encodings []EncodingAttempt `json:"encodings"`
}

// CategoryCount returns the number of code points in the given category.
func (r *Report) CategoryCount(c Category) int {
	return r.Categories[c]
}

// HasCategory reports whether at least one code point belongs to c.
func (r *Report) HasCategory(c Category) bool {
	return r.Categories[c] > 0
}

// TopFrequencies returns at most n frequency entries. A non-positive n
// returns the full table.
func (r *Report) TopFrequencies(n int) []FrequencyEntry {
	if n <= 0 || n >= len(r.Frequencies) {
		return r.Frequencies
	}
	return r.Frequencies[:n]
}

// SuccessfulEncodings returns the attempts that decoded.
func (r *Report) SuccessfulEncodings() []EncodingAttempt {
	result := make([]EncodingAttempt, 0, len(r.Encodings))
	for _, e := range r.Encodings {
		if e.Success {
			result = append(result, e)
		}
	}
	return result
}
