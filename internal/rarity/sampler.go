package rarity

// Source is the randomness the sampler draws from; *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// SampleIndex picks a position in a sequence of n layers.
//
// A tier bucket is chosen with probability proportional to its weight, then a
// position is drawn uniformly from that bucket's index range. An empty bucket
// falls back to position 0. The returned tier is always the one implied by
// the returned position. With a zero total weight the common bucket is chosen.
// n <= 0 returns -1.
func SampleIndex(n int, w Weights, src Source) (int, Tier) {
	if n <= 0 {
		return -1, Common
	}

	r := src.Float64() * w.Total()
	for _, t := range Tiers {
		r -= w.Of(t)
		if r > 0 {
			continue
		}
		lo, hi := TierRange(t, n)
		if hi <= lo {
			return 0, TierForIndex(0, n)
		}
		idx := lo + src.Intn(hi-lo)
		return idx, TierForIndex(idx, n)
	}
	// Floating point residue walked past the last bucket.
	return 0, TierForIndex(0, n)
}

// Pick is SampleIndex over a concrete layer sequence.
func Pick[T any](layers []T, w Weights, src Source) (T, int, Tier) {
	idx, tier := SampleIndex(len(layers), w, src)
	if idx < 0 {
		var zero T
		return zero, idx, tier
	}
	return layers[idx], idx, tier
}
