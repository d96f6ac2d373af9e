package metrics

import (
	"math"
	"sort"
)

// Quantile returns the p-th quantile (0 <= p <= 1) of values, interpolating
// linearly between the two closest ranks. values is not modified.
// It returns NaN for an empty input.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lower := int(math.Floor(h))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	if lower < 0 {
		return sorted[0]
	}
	frac := h - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// Median is the 0.5 quantile; even-sized inputs average the middle pair.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}
