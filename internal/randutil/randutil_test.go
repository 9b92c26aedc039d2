package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestWeighted(t *testing.T) {
	rng := New(7)
	weights := []float64{0, 1, 0, 3}
	counts := make([]int, len(weights))
	const n = 40000
	for i := 0; i < n; i++ {
		counts[Weighted(rng, weights)]++
	}
	assert.Zero(t, counts[0])
	assert.Zero(t, counts[2])
	assert.InDelta(t, 0.25, float64(counts[1])/n, 0.01)
	assert.InDelta(t, 0.75, float64(counts[3])/n, 0.01)

	assert.Panics(t, func() { Weighted(rng, []float64{0, -1}) })
}
