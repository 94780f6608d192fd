package engine

import "sort"

// medianFloat returns the statistical median: the middle value of the sorted
// input, or the average of the two central values for an even count. The
// input slice is not modified.
func medianFloat(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// medianInt is medianFloat truncated (not rounded) to an integer.
func medianInt(vals []float64) int {
	return int(medianFloat(vals))
}

// modeString returns the most frequent value; ties break toward the
// lexicographically smallest. ok is false for empty input.
func modeString(vals []string) (string, bool) {
	if len(vals) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}

	var best string
	bestCount := 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best = v
			bestCount = c
		}
	}
	return best, true
}

// modeFloat returns the most frequent value; ties break toward the smallest.
// ok is false for empty input.
func modeFloat(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}

	var best float64
	bestCount := 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best = v
			bestCount = c
		}
	}
	return best, true
}
