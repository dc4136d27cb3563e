package analysis

// CodePoint is one element of a decomposed input.
type CodePoint struct {
	// Index is the ordinal position in the code point sequence.
	Index int
	// Value is the Unicode scalar value.
	Value rune
}

// Decompose splits input into its code points in order. Combining marks
// are kept as separate code points, and each invalid UTF-8 byte becomes
// one utf8.RuneError. An empty input yields an empty, non-nil slice.
func Decompose(input string) []CodePoint {
	points := make([]CodePoint, 0, len(input))
	index := 0
	for _, r := range input {
		points = append(points, CodePoint{Index: index, Value: r})
		index++
	}
	return points
}

// runes returns the values of points.
func runes(points []CodePoint) []rune {
	out := make([]rune, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}
