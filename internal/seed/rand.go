package seed

import "math/rand"

// weightedChoice picks an index with probability proportional to its weight.
func weightedChoice(r *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	target := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// uniform draws a float64 from [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intRange draws an int from [lo, hi] inclusive.
func intRange(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// choice picks a uniform element.
func choice(r *rand.Rand, items []string) string {
	return items[r.Intn(len(items))]
}

// sampleIndexes picks k distinct indexes out of n.
func sampleIndexes(r *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	return r.Perm(n)[:k]
}
