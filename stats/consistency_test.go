package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsistencyScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		daily []float64
		total float64
		want  float64
	}{
		{"zeroVariancePositive", []float64{100, 100, 100}, 300, 100},
		{"empty", nil, 0, 0},
		{"zeroTotalProfit", []float64{50, -50}, 0, 0},
		{"negativeAverage", []float64{-100, 50, -100}, -150, 0},
		{"singleDay", []float64{250}, 250, 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConsistencyScore(tt.daily, tt.total)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConsistencyScore_PenalizesVariance(t *testing.T) {
	t.Parallel()

	smooth := ConsistencyScore([]float64{100, 100, 100}, 300)
	lumpy := ConsistencyScore([]float64{290, 5, 5}, 300)

	assert.Greater(t, smooth, lumpy)
	assert.GreaterOrEqual(t, lumpy, 0.0)
	assert.LessOrEqual(t, lumpy, 100.0)
}

func TestConsistencyScore_ClampedToZero(t *testing.T) {
	t.Parallel()

	// Std dev far larger than total profit would go negative unclamped.
	got := ConsistencyScore([]float64{1000, -995, 1000, -995}, 10)
	assert.Zero(t, got)
}
