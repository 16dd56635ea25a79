package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistribution_DegenerateOnZeroMass(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
	}{
		{"all zero", []float64{0, 0, 0}},
		{"negative only", []float64{-1, -2}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDistribution(tt.weights)
			var degErr *DegenerateDistributionError
			require.Error(t, err)
			assert.True(t, errors.As(err, &degErr), "want DegenerateDistributionError, got %T", err)
		})
	}
}

func TestDistribution_CDFSteps(t *testing.T) {
	dist, err := NewDistribution([]float64{1, 3, 0, 4})
	require.NoError(t, err)

	assert.Equal(t, 0.0, dist.CDF(-1))
	assert.InDelta(t, 0.125, dist.CDF(0), 1e-12)
	assert.InDelta(t, 0.5, dist.CDF(1), 1e-12)
	assert.InDelta(t, 0.5, dist.CDF(2), 1e-12, "zero-mass bin adds nothing")
	assert.Equal(t, 1.0, dist.CDF(3))
	assert.Equal(t, 1.0, dist.CDF(99))
}

func TestDistribution_QuantileFindsSmallestBin(t *testing.T) {
	dist, err := NewDistribution([]float64{1, 3, 0, 4})
	require.NoError(t, err)

	tests := []struct {
		u       float64
		wantBin int
	}{
		{0.0, 0},
		{0.124, 0},
		{0.126, 1},
		{0.499, 1},
		{0.501, 3}, // skips the zero-mass bin
		{0.999, 3},
	}
	for _, tt := range tests {
		bin, frac := dist.Quantile(tt.u)
		if bin != tt.wantBin {
			t.Errorf("Quantile(%v) bin = %d, want %d", tt.u, bin, tt.wantBin)
		}
		if frac < 0 || frac >= 1 {
			t.Errorf("Quantile(%v) frac = %v, want [0, 1)", tt.u, frac)
		}
	}
}

func TestDistribution_QuantileInterpolatesWithinBin(t *testing.T) {
	dist, err := NewDistribution([]float64{2, 2})
	require.NoError(t, err)

	bin, frac := dist.Quantile(0.25)
	assert.Equal(t, 0, bin)
	assert.InDelta(t, 0.5, frac, 1e-12)

	bin, frac = dist.Quantile(0.75)
	assert.Equal(t, 1, bin)
	assert.InDelta(t, 0.5, frac, 1e-12)
}
