package analysis

import (
	"math"
	"unicode"

	"github.com/nao1215/sigdec/internal/model"
)

// Printable ASCII bounds used for the printable ratio.
const (
	printableMin = 0x20
	printableMax = 0x7E
	asciiMax     = 0x7F
)

// Statistics holds the aggregated figures of one input.
type Statistics struct {
	Length           int
	UniqueCharacters int
	Categories       map[model.Category]int
	MinCodePoint     *int
	MaxCodePoint     *int
	ASCIIOnly        bool
	PrintableRatio   float64
	Entropy          float64

	// NonASCII counts code points above 0x7F.
	NonASCII int
	// Controls counts control characters that are not white space.
	Controls int
}

// Aggregate computes the statistics of a decomposed input.
func Aggregate(points []CodePoint) Statistics {
	stats := Statistics{
		Length:     len(points),
		Categories: emptyCategoryCounts(),
		ASCIIOnly:  true,
	}
	if len(points) == 0 {
		return stats
	}

	counts := make(map[rune]int, len(points))
	minCP, maxCP := points[0].Value, points[0].Value
	printable := 0

	for _, p := range points {
		r := p.Value
		counts[r]++
		category := Classify(r)
		stats.Categories[category]++

		if r < minCP {
			minCP = r
		}
		if r > maxCP {
			maxCP = r
		}
		if r > asciiMax {
			stats.ASCIIOnly = false
			stats.NonASCII++
		}
		if printableMin <= r && r <= printableMax {
			printable++
		}
		if unicode.IsControl(r) && category != model.CategoryWhitespace {
			stats.Controls++
		}
	}

	lo, hi := int(minCP), int(maxCP)
	stats.MinCodePoint = &lo
	stats.MaxCodePoint = &hi
	stats.UniqueCharacters = len(counts)
	stats.PrintableRatio = float64(printable) / float64(len(points))
	stats.Entropy = ShannonEntropy(counts, len(points))

	return stats
}

// ShannonEntropy returns the entropy in bits per symbol of a distribution
// given as occurrence counts over total symbols. It is 0 when total <= 1.
func ShannonEntropy(counts map[rune]int, total int) float64 {
	if total <= 1 {
		return 0
	}

	// H(X) = -Σ p(x) log2 p(x)
	entropy := 0.0
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}

	// A single-symbol distribution can round to -0 or a tiny negative value.
	if entropy < 0 || math.IsNaN(entropy) {
		return 0
	}
	return entropy
}

// emptyCategoryCounts returns a count map holding every category with zero.
func emptyCategoryCounts() map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, c := range model.Categories() {
		counts[c] = 0
	}
	return counts
}
