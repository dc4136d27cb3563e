package analysis

import (
	"slices"

	"github.com/nao1215/sigdec/internal/model"
)

// RankFrequencies groups points by value and orders the groups by count,
// highest first. Ties keep the order of first occurrence. The table is never
// truncated; callers slice it with model.Report.TopFrequencies.
func RankFrequencies(points []CodePoint) []model.FrequencyEntry {
	entries := make([]model.FrequencyEntry, 0)
	if len(points) == 0 {
		return entries
	}

	position := make(map[rune]int)
	for _, p := range points {
		if i, ok := position[p.Value]; ok {
			entries[i].Count++
			continue
		}
		position[p.Value] = len(entries)
		entries = append(entries, model.FrequencyEntry{
			Char:      string(p.Value),
			CodePoint: p.Value,
			Count:     1,
			Display:   Display(p.Value),
		})
	}

	total := float64(len(points))
	for i := range entries {
		entries[i].Percentage = 100 * float64(entries[i].Count) / total
	}

	slices.SortStableFunc(entries, func(a, b model.FrequencyEntry) int {
		return b.Count - a.Count
	})
	return entries
}
