package population

import (
	"sort"

	"github.com/katalvlaran/hgsrr/individual"
)

// brokenPairsDistance counts the customers whose outgoing arc in a is
// absent from b (a.Succ[c] != b.Succ[c]), normalised by n (the number of
// customers). Arcs are read from Succ, keyed by (customer, successor) so that the
// shared depot sentinel (0) never collides across different routes — the
// source customer always disambiguates it.
func brokenPairsDistance(a, b *individual.Individual, n int) float64 {
	diff := 0
	for c := 1; c <= n; c++ {
		if a.Succ[c] != b.Succ[c] {
			diff++
		}
	}
	return float64(diff) / float64(n)
}

// updateDiversity recomputes ind's Diversity as the average broken-pairs
// distance to its NumClosest closest siblings in set (excluding ind
// itself). A set of size 1 leaves Diversity at 0.
func updateDiversity(ind *individual.Individual, set []*individual.Individual, n, numClosest int) {
	if len(set) <= 1 {
		ind.Diversity = 0
		return
	}

	dists := make([]float64, 0, len(set)-1)
	for _, other := range set {
		if other == ind {
			continue
		}
		dists = append(dists, brokenPairsDistance(ind, other, n))
	}
	sort.Float64s(dists)

	k := numClosest
	if k > len(dists) {
		k = len(dists)
	}
	if k == 0 {
		ind.Diversity = 0
		return
	}

	var sum float64
	for i := 0; i < k; i++ {
		sum += dists[i]
	}
	ind.Diversity = sum / float64(k)
}

// refreshDiversity recomputes Diversity for every member of set. It is
// called eagerly, after every insert and before and after each survivor
// removal; there is no dirty flag and no recomputation on read.
func refreshDiversity(set []*individual.Individual, n, numClosest int) {
	for _, ind := range set {
		updateDiversity(ind, set, n, numClosest)
	}
}
