// Package quantile provides a small nearest-rank quantile helper shared by
// the lexi tree packages' PathLengthQuantiles functions.
package quantile

import "sort"

// Of returns the nearest-rank quantile of samples at each fraction in qs
// (each expected in [0, 1]). samples is left unchanged; a sorted copy is used.
func Of(samples []int, qs []float64) []int {
	out := make([]int, len(qs))

	if len(samples) == 0 {
		return out
	}

	sorted := make([]int, len(samples))
	copy(sorted, samples)
	sort.Ints(sorted)

	for i, q := range qs {
		idx := int(q * float64(len(sorted)-1))

		switch {
		case idx < 0:
			idx = 0
		case idx >= len(sorted):
			idx = len(sorted) - 1
		}

		out[i] = sorted[idx]
	}

	return out
}
