package analysis

import (
	"github.com/nao1215/sigdec/internal/model"
)

// entropyEpsilon is the entropy difference treated as no change.
const entropyEpsilon = 1e-9

// Compare describes how right differs from left.
func Compare(left, right *model.Report) *model.Comparison {
	c := &model.Comparison{
		Left:                summarize(left),
		Right:               summarize(right),
		Identical:           left.Fingerprint == right.Fingerprint,
		LengthDelta:         right.Length - left.Length,
		UniqueDelta:         right.UniqueCharacters - left.UniqueCharacters,
		EntropyDelta:        right.Entropy - left.Entropy,
		PrintableRatioDelta: right.PrintableRatio - left.PrintableRatio,
		CategoryDeltas:      make(map[model.Category]int, len(model.Categories())),
	}

	switch {
	case c.EntropyDelta > entropyEpsilon:
		c.EntropyDirection = model.DirectionHigher
	case c.EntropyDelta < -entropyEpsilon:
		c.EntropyDirection = model.DirectionLower
	default:
		c.EntropyDirection = model.DirectionUnchanged
	}

	for _, cat := range model.Categories() {
		c.CategoryDeltas[cat] = right.CategoryCount(cat) - left.CategoryCount(cat)
	}

	leftChars := characterSet(left)
	rightChars := characterSet(right)
	c.SharedCharacters = intersect(leftChars, rightChars)
	c.LeftOnly = subtract(leftChars, rightChars)
	c.RightOnly = subtract(rightChars, leftChars)

	c.InsightsGained = subtract(right.Insights, left.Insights)
	c.InsightsLost = subtract(left.Insights, right.Insights)

	leftDecoded := decodedLabels(left)
	rightDecoded := decodedLabels(right)
	c.DecodingsGained = subtract(rightDecoded, leftDecoded)
	c.DecodingsLost = subtract(leftDecoded, rightDecoded)

	return c
}

func summarize(r *model.Report) model.ComparedInput {
	return model.ComparedInput{
		Input:            r.Input,
		Fingerprint:      r.Fingerprint,
		Length:           r.Length,
		UniqueCharacters: r.UniqueCharacters,
		Entropy:          r.Entropy,
		PrintableRatio:   r.PrintableRatio,
	}
}

// characterSet returns the distinct characters of r in first-occurrence order.
func characterSet(r *model.Report) []string {
	seen := make(map[rune]bool, r.UniqueCharacters)
	chars := make([]string, 0, r.UniqueCharacters)
	for _, d := range r.Characters {
		if seen[d.CodePoint] {
			continue
		}
		seen[d.CodePoint] = true
		chars = append(chars, string(d.CodePoint))
	}
	return chars
}

func decodedLabels(r *model.Report) []string {
	labels := make([]string, 0, len(r.Encodings))
	for _, a := range r.SuccessfulEncodings() {
		labels = append(labels, a.Label)
	}
	return labels
}

// subtract returns the elements of a missing from b, keeping a's order.
func subtract(a, b []string) []string {
	in := toSet(b)
	out := make([]string, 0)
	for _, s := range a {
		if !in[s] {
			out = append(out, s)
		}
	}
	return out
}

// intersect returns the elements of a present in b, keeping a's order.
func intersect(a, b []string) []string {
	in := toSet(b)
	out := make([]string, 0)
	for _, s := range a {
		if in[s] {
			out = append(out, s)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, s := range items {
		set[s] = true
	}
	return set
}
