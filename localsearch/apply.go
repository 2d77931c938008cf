package localsearch

import (
	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// routeStats delegates to individual.RouteStats so every package that
// scores a candidate route's distance/load does so identically.
func routeStats(p *problem.Problem, customers []int) (dist float64, load int) {
	return individual.RouteStats(p, customers)
}

// posOf returns the index of c within customers, or -1 if absent.
func posOf(customers []int, c int) int {
	for i, x := range customers {
		if x == c {
			return i
		}
	}
	return -1
}

// predecessorOf returns the customer immediately before c in customers, or
// ok==false if c leads the route (its predecessor is the depot).
func predecessorOf(customers []int, c int) (pred int, ok bool) {
	for i, x := range customers {
		if x == c {
			if i == 0 {
				return 0, false
			}
			return customers[i-1], true
		}
	}
	return 0, false
}

// removeMany returns a copy of customers with every member of remove
// filtered out, preserving relative order.
func removeMany(customers []int, remove map[int]bool) []int {
	out := make([]int, 0, len(customers))
	for _, c := range customers {
		if !remove[c] {
			out = append(out, c)
		}
	}
	return out
}

// insertAfter returns a copy of customers with block inserted immediately
// after the first occurrence of anchor.
func insertAfter(customers []int, anchor int, block []int) []int {
	out := make([]int, 0, len(customers)+len(block))
	for _, c := range customers {
		out = append(out, c)
		if c == anchor {
			out = append(out, block...)
		}
	}
	return out
}

// insertAtFront returns a copy of customers with block prepended.
func insertAtFront(customers []int, block []int) []int {
	out := make([]int, 0, len(customers)+len(block))
	out = append(out, block...)
	out = append(out, customers...)
	return out
}

// insertAtPos returns a copy of customers with c inserted at index pos.
func insertAtPos(customers []int, pos int, c int) []int {
	out := make([]int, 0, len(customers)+1)
	out = append(out, customers[:pos]...)
	out = append(out, c)
	out = append(out, customers[pos:]...)
	return out
}

// substitute returns a copy of customers with every key of repl replaced by
// its value.
func substitute(customers []int, repl map[int]int) []int {
	out := make([]int, len(customers))
	for i, c := range customers {
		if r, ok := repl[c]; ok {
			out[i] = r
		} else {
			out[i] = c
		}
	}
	return out
}

// reverseSeg reverses customers[i:j+1] in place.
func reverseSeg(customers []int, i, j int) {
	for i < j {
		customers[i], customers[j] = customers[j], customers[i]
		i++
		j--
	}
}

// evaluateAndApply scores a proposed replacement of one or two routes'
// Customers slices, rejecting any proposal that would leave a route empty
// (local search never deletes a route outright), and commits it to ind only
// when the resulting penalised cost is strictly lower than the routes'
// current combined cost.
func evaluateAndApply(p *problem.Problem, ind *individual.Individual, penalty float64, proposal map[int][]int) bool {
	for _, customers := range proposal {
		if len(customers) == 0 {
			return false
		}
	}

	type snapshot struct {
		dist   float64
		load   int
		excess int
	}

	oldSnap := make(map[int]snapshot, len(proposal))
	var oldPenalised float64
	for idx := range proposal {
		r := ind.Routes[idx]
		oldSnap[idx] = snapshot{r.Distance, r.Load, r.Excess}
		oldPenalised += r.Distance + penalty*float64(r.Excess)
	}

	newSnap := make(map[int]snapshot, len(proposal))
	var newPenalised float64
	for idx, customers := range proposal {
		dist, load := routeStats(p, customers)
		excess := 0
		if load > p.Capacity() {
			excess = load - p.Capacity()
		}
		newSnap[idx] = snapshot{dist, load, excess}
		newPenalised += dist + penalty*float64(excess)
	}

	if newPenalised >= oldPenalised-eps {
		return false
	}

	var distDelta float64
	var excessDelta int
	for idx, customers := range proposal {
		ns := newSnap[idx]
		ind.Routes[idx].Customers = customers
		ind.Routes[idx].Distance = ns.dist
		ind.Routes[idx].Load = ns.load
		ind.Routes[idx].Excess = ns.excess
		individual.RelinkRoute(ind, idx)

		distDelta += ns.dist - oldSnap[idx].dist
		excessDelta += ns.excess - oldSnap[idx].excess
	}

	ind.Distance += distDelta
	ind.CapacityExcess += excessDelta
	ind.PenalisedCost += newPenalised - oldPenalised
	ind.Feasible = ind.CapacityExcess == 0

	return true
}
