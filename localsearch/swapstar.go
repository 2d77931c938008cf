package localsearch

import (
	"math"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// routeAngleSector returns the [min, max] polar angle (radians, relative to
// the depot) spanned by a route's customers, used as a cheap geometric
// prune before the O(len(r1)*len(r2)) SWAP* inner scan.
func routeAngleSector(p *problem.Problem, customers []int) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	depot := p.Coord(0)
	for _, c := range customers {
		pt := p.Coord(c)
		a := math.Atan2(pt.Y-depot.Y, pt.X-depot.X)
		if a < min {
			min = a
		}
		if a > max {
			max = a
		}
	}
	return min, max
}

// sectorsOverlap reports whether two angle ranges intersect. Both inputs
// are assumed to already lie within a single [-pi, pi] winding; routes that
// straddle the -pi/pi seam may be pruned away as a false negative, which
// only costs a missed SWAP* opportunity, never correctness.
func sectorsOverlap(aMin, aMax, bMin, bMax float64) bool {
	return aMin <= bMax && bMin <= aMax
}

// bestInsertionDelta returns the cheapest distance delta (and the position
// achieving it) for inserting customer c into customers, which must not
// already contain c.
func bestInsertionDelta(p *problem.Problem, customers []int, c int) (delta float64, pos int) {
	best := math.Inf(1)
	n := len(customers)
	for i := 0; i <= n; i++ {
		prev, next := 0, 0
		if i > 0 {
			prev = customers[i-1]
		}
		if i < n {
			next = customers[i]
		}
		d := p.Dist(prev, c) + p.Dist(c, next) - p.Dist(prev, next)
		if d < best {
			best = d
			pos = i
		}
	}
	return best, pos
}

// runSwapStar performs one full Phase B pass over every pair of routes
// whose polar sectors overlap, applying for each pair the best SWAP* found
// when it strictly improves. Returns true iff at least one move was applied.
func runSwapStar(p *problem.Problem, ind *individual.Individual, penalty float64) bool {
	improvedAny := false

	for r1 := 0; r1 < len(ind.Routes); r1++ {
		for r2 := r1 + 1; r2 < len(ind.Routes); r2++ {
			if len(ind.Routes[r1].Customers) == 0 || len(ind.Routes[r2].Customers) == 0 {
				continue
			}
			min1, max1 := routeAngleSector(p, ind.Routes[r1].Customers)
			min2, max2 := routeAngleSector(p, ind.Routes[r2].Customers)
			if !sectorsOverlap(min1, max1, min2, max2) {
				continue
			}
			if trySwapStar(p, ind, penalty, r1, r2) {
				improvedAny = true
			}
		}
	}

	return improvedAny
}

// trySwapStar scans every (u, v) pair with u in r1 and v in r2, evaluating
// the combined relocate-both move, and commits the best strictly-improving
// pair found.
func trySwapStar(p *problem.Problem, ind *individual.Individual, penalty float64, r1, r2 int) bool {
	c1 := ind.Routes[r1].Customers
	c2 := ind.Routes[r2].Customers

	oldPenalised := ind.Routes[r1].Distance + penalty*float64(ind.Routes[r1].Excess) +
		ind.Routes[r2].Distance + penalty*float64(ind.Routes[r2].Excess)

	bestDelta := -eps
	var bestNewR1, bestNewR2 []int
	found := false

	for _, u := range c1 {
		r1Minus := removeMany(c1, map[int]bool{u: true})
		for _, v := range c2 {
			r2Minus := removeMany(c2, map[int]bool{v: true})

			_, posV := bestInsertionDelta(p, r1Minus, v)
			_, posU := bestInsertionDelta(p, r2Minus, u)

			newR1 := insertAtPos(r1Minus, posV, v)
			newR2 := insertAtPos(r2Minus, posU, u)

			distNew1, loadNew1 := routeStats(p, newR1)
			distNew2, loadNew2 := routeStats(p, newR2)

			excess1, excess2 := 0, 0
			if loadNew1 > p.Capacity() {
				excess1 = loadNew1 - p.Capacity()
			}
			if loadNew2 > p.Capacity() {
				excess2 = loadNew2 - p.Capacity()
			}
			newPenalised := distNew1 + penalty*float64(excess1) + distNew2 + penalty*float64(excess2)
			delta := newPenalised - oldPenalised

			if delta < bestDelta {
				bestDelta = delta
				bestNewR1 = newR1
				bestNewR2 = newR2
				found = true
			}
		}
	}

	if !found {
		return false
	}

	return evaluateAndApply(p, ind, penalty, map[int][]int{r1: bestNewR1, r2: bestNewR2})
}
