package gen

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution is an empirical distribution over a sequence of weighted,
// chronologically ordered bins. It supports inverse-transform (Smirnov)
// sampling: a uniform draw u maps to the first bin whose cumulative mass
// reaches u, plus the fractional position of u inside that bin's mass.
type Distribution struct {
	cdf []float64
}

// NewDistribution builds the empirical CDF of a weight vector. Negative
// weights are treated as zero. A vector with zero total mass has no
// defined inverse CDF and is rejected with DegenerateDistributionError.
func NewDistribution(weights []float64) (*Distribution, error) {
	mass := make([]float64, len(weights))
	for i, w := range weights {
		if w > 0 {
			mass[i] = w
		}
	}
	total := totalMass(mass)
	if total <= 0 {
		return nil, &DegenerateDistributionError{Buckets: len(weights)}
	}

	cdf := make([]float64, len(mass))
	floats.CumSum(cdf, mass)
	floats.Scale(1/total, cdf)
	// Pin the last step to exactly 1 so u=1-epsilon never falls off the end.
	cdf[len(cdf)-1] = 1
	return &Distribution{cdf: cdf}, nil
}

// CDF returns the cumulative probability mass through bin (inclusive).
// Bins below zero have mass zero; bins past the end have mass one.
func (d *Distribution) CDF(bin int) float64 {
	if bin < 0 {
		return 0
	}
	if bin >= len(d.cdf) {
		return 1
	}
	return d.cdf[bin]
}

// Quantile maps u in [0, 1) to (bin, frac): the smallest bin whose
// cumulative mass is >= u, and u's linear position within that bin's own
// mass. frac is in [0, 1) and supports within-bin interpolation.
func (d *Distribution) Quantile(u float64) (bin int, frac float64) {
	bin = sort.SearchFloat64s(d.cdf, u)
	if bin >= len(d.cdf) {
		bin = len(d.cdf) - 1
	}
	// Skip forward over zero-mass bins that share the same CDF value.
	for bin < len(d.cdf)-1 && d.binMass(bin) == 0 {
		bin++
	}
	lo := d.CDF(bin - 1)
	step := d.cdf[bin] - lo
	if step <= 0 {
		return bin, 0
	}
	frac = (u - lo) / step
	if frac < 0 {
		frac = 0
	}
	if frac >= 1 {
		frac = 1 - 1e-12
	}
	return bin, frac
}

func (d *Distribution) binMass(bin int) float64 {
	return d.cdf[bin] - d.CDF(bin-1)
}
