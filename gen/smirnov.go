package gen

import (
	"math/rand"
	"sort"
)

// DefaultSeed seeds Smirnov generation when the caller supplies none.
// It is the bit pattern 0xF0F0F0F0F0F0F0F0 read as a signed 64-bit value.
const DefaultSeed int64 = -1085102592571150096

// GenerateSmirnov draws totalRequests arrival events by inverse-transform
// sampling against the empirical distribution of the normalized curve's
// time mass. Each uniform draw resolves to a bucket via the inverse CDF
// and to an exact timestamp by linear interpolation across the bucket's
// span; the event's function id is drawn from the bucket's mix with
// probability proportional to each function's share. The schedule is
// sorted by timestamp before returning.
//
// Individual events vary across seeds, but the timestamp histogram
// converges to the curve's shape as totalRequests grows. An all-zero
// curve has no defined inverse CDF and fails with
// DegenerateDistributionError.
func GenerateSmirnov(curve Curve, totalRequests int, seed int64) (Schedule, error) {
	if totalRequests <= 0 {
		return nil, configErrorf("total_requests", "must be positive, got %d", totalRequests)
	}
	dist, err := NewDistribution(bucketCounts(curve))
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	schedule := make(Schedule, 0, totalRequests)
	for i := 0; i < totalRequests; i++ {
		u := rng.Float64()
		bin, frac := dist.Quantile(u)
		bucket := curve.Buckets[bin]

		mix := bucket.Mix
		if len(mix) == 0 {
			mix = curve.WindowMix
		}
		schedule = append(schedule, ArrivalEvent{
			Timestamp:  bucket.Start + frac*bucket.Span,
			FunctionID: sampleMix(rng, mix),
		})
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].Timestamp < schedule[j].Timestamp
	})
	return schedule, nil
}

// sampleMix draws one function id with probability proportional to its
// weight within the mix.
func sampleMix(rng *rand.Rand, mix []FunctionShare) string {
	if len(mix) == 0 {
		return ""
	}
	total := 0.0
	for _, s := range mix {
		total += s.Weight
	}
	u := rng.Float64() * total
	acc := 0.0
	for _, s := range mix {
		acc += s.Weight
		if u < acc {
			return s.FunctionID
		}
	}
	return mix[len(mix)-1].FunctionID
}
