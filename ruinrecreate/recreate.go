package ruinrecreate

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// Recreate reinserts every customer in removed into ind.Routes, processing
// them in descending-demand order (ties broken randomly). For each
// customer it scans every insertion position across every route, skipping
// any given position independently with probability opts.Blink, and
// commits the cheapest non-blinked position found under penalised cost. A
// customer with no admissible position opens a new single-customer route.
func Recreate(p *problem.Problem, ind *individual.Individual, removed []int, opts Options, penalty float64, rng *rand.Rand) {
	if len(removed) == 0 {
		return
	}

	order := append([]int(nil), removed...)
	tieBreak := make(map[int]float64, len(order))
	for _, c := range order {
		tieBreak[c] = rng.Float64()
	}
	sort.Slice(order, func(i, j int) bool {
		di, dj := p.Demand(order[i]), p.Demand(order[j])
		if di != dj {
			return di > dj
		}
		return tieBreak[order[i]] < tieBreak[order[j]]
	})

	for _, c := range order {
		insertOne(p, ind, c, opts, penalty, rng)
	}
}

// insertOne scans every insertion position across every existing route (and
// the option of a new singleton route), applying independent blink skips,
// and commits the cheapest admissible position under penalised cost.
func insertOne(p *problem.Problem, ind *individual.Individual, c int, opts Options, penalty float64, rng *rand.Rand) {
	bestCost := math.Inf(1)
	bestRoute := -1
	bestPos := 0
	found := false

	for ri, r := range ind.Routes {
		for pos := 0; pos <= len(r.Customers); pos++ {
			if rng.Float64() < opts.Blink {
				continue
			}
			cost := insertionPenalisedDelta(p, r.Customers, pos, c, penalty)
			if cost < bestCost {
				bestCost = cost
				bestRoute = ri
				bestPos = pos
				found = true
			}
		}
	}

	if !found {
		ind.Routes = append(ind.Routes, individual.Route{
			Customers: []int{c},
			Load:      p.Demand(c),
			Distance:  p.Dist(0, c) + p.Dist(c, 0),
		})
		ri := len(ind.Routes) - 1
		individual.RelinkRoute(ind, ri)
		return
	}

	customers := ind.Routes[bestRoute].Customers
	newCustomers := make([]int, 0, len(customers)+1)
	newCustomers = append(newCustomers, customers[:bestPos]...)
	newCustomers = append(newCustomers, c)
	newCustomers = append(newCustomers, customers[bestPos:]...)

	dist, load := individual.RouteStats(p, newCustomers)
	ind.Routes[bestRoute].Customers = newCustomers
	ind.Routes[bestRoute].Distance = dist
	ind.Routes[bestRoute].Load = load
	ind.Routes[bestRoute].Excess = max(0, load-p.Capacity())
	individual.RelinkRoute(ind, bestRoute)
}

// insertionPenalisedDelta scores inserting c into customers at pos by the
// marginal change in penalised cost (distance plus capacity penalty),
// without mutating anything.
func insertionPenalisedDelta(p *problem.Problem, customers []int, pos, c int, penalty float64) float64 {
	n := len(customers)
	prev, next := 0, 0
	if pos > 0 {
		prev = customers[pos-1]
	}
	if pos < n {
		next = customers[pos]
	}
	distDelta := p.Dist(prev, c) + p.Dist(c, next) - p.Dist(prev, next)

	load := p.Demand(c)
	for _, x := range customers {
		load += p.Demand(x)
	}
	excess := max(0, load-p.Capacity())

	oldLoad := load - p.Demand(c)
	oldExcess := max(0, oldLoad-p.Capacity())

	return distDelta + penalty*float64(excess-oldExcess)
}
