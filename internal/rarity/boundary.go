package rarity

// tierFloorPercent is where each tier starts, as a percentage of the layer
// count. A tier ends where the next one starts; legendary ends at the count.
var tierFloorPercent = [...]int{
	Common:    0,
	Rare:      50,
	Epic:      80,
	Legendary: 95,
}

// ceilPercent returns ceil(n * pct / 100) without floating point error.
func ceilPercent(n, pct int) int {
	return (n*pct + 99) / 100
}

// TierRange returns the half-open index range [lo, hi) that classifies as t
// in a sequence of n layers. The range may be empty for small n.
//
// This is the single boundary function: sampling picks indices from these
// ranges and classification maps indices back through them.
func TierRange(t Tier, n int) (lo, hi int) {
	if n <= 0 || t < Common || t > Legendary {
		return 0, 0
	}
	lo = ceilPercent(n, tierFloorPercent[t])
	hi = n
	if t < Legendary {
		hi = ceilPercent(n, tierFloorPercent[t+1])
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// TierForIndex classifies position i of a sequence of n layers.
func TierForIndex(i, n int) Tier {
	for t := Legendary; t > Common; t-- {
		if lo, _ := TierRange(t, n); i >= lo {
			return t
		}
	}
	return Common
}
