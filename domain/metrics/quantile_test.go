package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileInterpolates(t *testing.T) {
	vals := []float64{4, 1, 3, 2}
	assert.InDelta(t, 1.99, Quantile(vals, 0.33), 1e-9)
	assert.InDelta(t, 3.01, Quantile(vals, 0.67), 1e-9)
	assert.Equal(t, 1.0, Quantile(vals, 0))
	assert.Equal(t, 4.0, Quantile(vals, 1))
	// input order is preserved
	assert.Equal(t, []float64{4, 1, 3, 2}, vals)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 3.0, Median([]float64{5, 3, 1}))
	assert.Equal(t, 7.0, Median([]float64{7}))
	assert.True(t, math.IsNaN(Median(nil)))
}
