package analysis

// minimumPatternLength is the floor for MinPatternLength; single
// characters repeat too often to be interesting.
const minimumPatternLength = 2

// DetectPatterns returns substrings of points that occur at least twice,
// overlaps included. Lengths run from len(points)/2 down to minLength.
// The result is ordered by descending length, then by first occurrence,
// and holds at most maxPatterns entries.
func DetectPatterns(points []rune, minLength, maxPatterns int) []string {
	patterns := make([]string, 0)
	if minLength < minimumPatternLength {
		minLength = minimumPatternLength
	}
	if maxPatterns <= 0 {
		return patterns
	}

	longest := longestRepeat(points, minLength, len(points)/2)
	for k := longest; k >= minLength; k-- {
		for _, s := range repeatsOfLength(points, k) {
			patterns = append(patterns, s)
			if len(patterns) == maxPatterns {
				return patterns
			}
		}
	}
	return patterns
}

// longestRepeat finds the greatest k in [lo, hi] for which some substring
// of length k repeats, or lo-1 when none does. A repeat of length k+1
// implies one of length k, so a binary search is sufficient.
func longestRepeat(points []rune, lo, hi int) int {
	best := lo - 1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if hasRepeat(points, mid) {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

func hasRepeat(points []rune, k int) bool {
	seen := make(map[string]struct{}, len(points))
	for i := 0; i+k <= len(points); i++ {
		s := string(points[i : i+k])
		if _, ok := seen[s]; ok {
			return true
		}
		seen[s] = struct{}{}
	}
	return false
}

// repeatsOfLength returns the substrings of length k occurring at least
// twice, in order of first occurrence.
func repeatsOfLength(points []rune, k int) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := 0; i+k <= len(points); i++ {
		s := string(points[i : i+k])
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	repeats := make([]string, 0)
	for _, s := range order {
		if counts[s] >= 2 {
			repeats = append(repeats, s)
		}
	}
	return repeats
}
