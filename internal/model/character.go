package model

// CharacterDetail describes one code point of the analyzed input.
type CharacterDetail struct {
	// Index is the ordinal position in the code point sequence,
	// not the byte offset in the original string.
	Index int `json:"index"`

	// CodePoint is the Unicode scalar value.
	CodePoint rune `json:"code_point"`

	// Display is a visible rendering of the code point. White space and
	// control characters are replaced by their Unicode control pictures.
	Display string `json:"display"`

	// Hex is the code point in U+XXXX notation.
	Hex string `json:"hex"`

	// Binary is the code point in base 2, zero padded to whole bytes.
	Binary string `json:"binary"`

	// Category is the character class of the code point.
	Category Category `json:"category"`

	// Name is the Unicode character name, empty when unassigned.
	Name string `json:"name,omitempty"`
}

// FrequencyEntry is one row of the frequency ranking.
type FrequencyEntry struct {
	// Char is the character itself.
	Char string `json:"char"`

	// CodePoint is the Unicode scalar value of Char.
	CodePoint rune `json:"code_point"`

	// Count is the number of occurrences in the input.
	Count int `json:"count"`

	// Percentage is 100 * Count / Length.
	Percentage float64 `json:"percentage"`

	// Display is the visible rendering of Char.
	Display string `json:"display"`
}
