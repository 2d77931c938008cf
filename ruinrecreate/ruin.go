package ruinrecreate

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// Ruin removes a randomly-sized batch of strings from ind.Routes and
// returns the removed customer IDs. It mutates ind.Routes in place (routes
// left with zero customers are dropped) and leaves every other cached field
// (Tour, Succ/Pred/RouteOf, Distance, PenalisedCost, ...) stale — callers
// must run Recreate and then individual.Split before relying on them again.
func Ruin(p *problem.Problem, ind *individual.Individual, opts Options, rng *rand.Rand) []int {
	if len(ind.Routes) == 0 {
		return nil
	}

	maxKs := int(math.Ceil(4*opts.AvgCardinality/(1+float64(opts.MaxStringLength)) - 1))
	if maxKs < 1 {
		maxKs = 1
	}
	ks := 1 + rng.Intn(maxKs)
	if ks > len(ind.Routes) {
		ks = len(ind.Routes)
	}

	allCustomers := make([]int, 0, len(ind.Tour))
	for _, r := range ind.Routes {
		allCustomers = append(allCustomers, r.Customers...)
	}
	if len(allCustomers) == 0 {
		return nil
	}
	seed := allCustomers[rng.Intn(len(allCustomers))]

	// Candidate chain: the seed itself, then its granular neighbour list —
	// the first ks distinct routes reached this way get ruined. When the
	// neighbour list is exhausted before ks routes are found, Ruin simply
	// ruins fewer routes than requested rather than reaching further; a
	// conservative simplification of a step spec.md leaves open-ended.
	candidates := make([]int, 0, 1+len(p.Neighbors(seed)))
	candidates = append(candidates, seed)
	candidates = append(candidates, p.Neighbors(seed)...)

	ruinedRoutes := make(map[int]bool, ks)
	var removed []int

	for _, c := range candidates {
		if len(ruinedRoutes) >= ks {
			break
		}
		ri := ind.RouteOf[c]
		if ri < 0 || ruinedRoutes[ri] {
			continue
		}

		kept, gone := ruinOneRoute(ind.Routes[ri].Customers, c, opts, rng)
		ind.Routes[ri].Customers = kept
		removed = append(removed, gone...)
		ruinedRoutes[ri] = true
	}

	compactEmptyRoutes(ind)

	return removed
}

// ruinOneRoute removes a string (or, with probability proportional to the
// string's length, a split-string leaving a preserved interior segment)
// centred on customer c from route.
func ruinOneRoute(route []int, c int, opts Options, rng *rand.Rand) (kept, removed []int) {
	pos := indexOf(route, c)
	if pos < 0 {
		return route, nil
	}

	maxLen := min(opts.MaxStringLength, len(route))
	if maxLen < 1 {
		maxLen = 1
	}
	strLen := 1 + rng.Intn(maxLen)

	start := pos - strLen/2
	if start < 0 {
		start = 0
	}
	end := start + strLen
	if end > len(route) {
		end = len(route)
		start = max(0, end-strLen)
	}

	splitProb := float64(strLen) / float64(opts.MaxStringLength)
	if end-start > 1 && rng.Float64() < splitProb {
		innerLen := end - start
		m := geometricSample(rng, opts.Alpha, innerLen-1)
		offset := 0
		if innerLen-m > 0 {
			offset = rng.Intn(innerLen - m)
		}
		preserveStart := start + offset
		preserveEnd := preserveStart + m

		kept = append(kept, route[:start]...)
		kept = append(kept, route[preserveStart:preserveEnd]...)
		kept = append(kept, route[end:]...)
		removed = append(removed, route[start:preserveStart]...)
		removed = append(removed, route[preserveEnd:end]...)
		return kept, removed
	}

	kept = append(append([]int(nil), route[:start]...), route[end:]...)
	removed = append([]int(nil), route[start:end]...)
	return kept, removed
}

// geometricSample draws m in [1, maxVal] by counting Bernoulli(alpha)
// successes before the first failure, clamped to maxVal. Larger alpha
// yields longer preserved segments on average.
func geometricSample(rng *rand.Rand, alpha float64, maxVal int) int {
	if maxVal < 1 {
		return 0
	}
	m := 1
	for m < maxVal && rng.Float64() < alpha {
		m++
	}
	return m
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// compactEmptyRoutes drops routes left with zero customers after ruin and
// relinks the survivors' Succ/Pred/RouteOf. Distance/load aggregates are
// left for the caller's subsequent Split to recompute.
func compactEmptyRoutes(ind *individual.Individual) {
	kept := ind.Routes[:0]
	for _, r := range ind.Routes {
		if len(r.Customers) > 0 {
			kept = append(kept, r)
		}
	}
	ind.Routes = kept
	individual.RebuildLinks(ind)
}
