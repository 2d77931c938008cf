package localsearch

import (
	"math/rand"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// runGranularRI performs one full Phase A pass: for each customer u, taken
// in randomised order, try every neighbour v in u's granular list against
// the full move bundle; apply the first strictly-improving move found and
// retry u from the top of its neighbour list, per the "u is retried" rule.
// Returns true iff at least one move was applied.
func runGranularRI(p *problem.Problem, ind *individual.Individual, penalty float64, rng *rand.Rand) bool {
	order := rng.Perm(p.N())
	improvedAny := false

	for _, idx := range order {
		u := idx + 1 // customers are 1..N; Perm is 0-based
		if ind.RouteOf[u] < 0 {
			continue
		}

	retry:
		for _, v := range p.Neighbors(u) {
			if ind.RouteOf[v] < 0 || v == u {
				continue
			}
			if tryMoveBundle(p, ind, penalty, u, v) {
				improvedAny = true
				goto retry
			}
		}
	}

	return improvedAny
}

// tryMoveBundle attempts every move in allMoves for the ordered pair (u, v)
// and applies the first one whose evaluateAndApply succeeds.
func tryMoveBundle(p *problem.Problem, ind *individual.Individual, penalty float64, u, v int) bool {
	for _, mk := range allMoves {
		proposal, ok := buildProposal(ind, mk, u, v)
		if !ok {
			continue
		}
		if evaluateAndApply(p, ind, penalty, proposal) {
			return true
		}
	}
	return false
}

// buildProposal constructs the candidate route-customer slices for move mk
// applied to (u, v). ok is false when the move is not well-defined for this
// pair (e.g. a within-route move requested across routes, or a degenerate
// adjacency that would be a no-op).
func buildProposal(ind *individual.Individual, mk moveKind, u, v int) (map[int][]int, bool) {
	ru, rv := ind.RouteOf[u], ind.RouteOf[v]
	if ru < 0 || rv < 0 {
		return nil, false
	}

	switch mk {
	case moveRelocateSingle:
		if v == u || ind.Pred[u] == v {
			return nil, false
		}
		return relocateBlock(ind, ru, rv, []int{u}, v, false), true

	case moveRelocatePair:
		x := ind.Succ[u]
		if x == 0 || x == v || v == u {
			return nil, false
		}
		return relocateBlock(ind, ru, rv, []int{u, x}, v, false), true

	case moveRelocatePairReversed:
		x := ind.Succ[u]
		if x == 0 || x == v || v == u {
			return nil, false
		}
		return relocateBlock(ind, ru, rv, []int{u, x}, v, true), true

	case moveSwapSingle:
		if u == v {
			return nil, false
		}
		return swapSingle(ind, ru, rv, u, v), true

	case moveSwapPairSingle:
		x := ind.Succ[u]
		if x == 0 || x == v || u == v {
			return nil, false
		}
		return swapPairSingle(ind, ru, rv, u, x, v), true

	case moveSwapPairPair:
		x := ind.Succ[u]
		y := ind.Succ[v]
		if x == 0 || y == 0 || x == v || y == u || u == v {
			return nil, false
		}
		return swapPairPair(ind, ru, rv, u, x, v, y), true

	case moveTwoOptWithinRoute:
		if ru != rv || u == v {
			return nil, false
		}
		return twoOptWithin(ind, ru, u, v), true

	case moveTwoOptBetweenRoutes:
		if ru == rv {
			return nil, false
		}
		return twoOptBetween(ind, ru, rv, u, v)
	}

	return nil, false
}

// relocateBlock moves block (a contiguous [u] or [u,succ(u)] run) so that it
// follows v, optionally reversed.
func relocateBlock(ind *individual.Individual, ru, rv int, block []int, v int, reversed bool) map[int][]int {
	toInsert := block
	if reversed {
		toInsert = []int{block[1], block[0]}
	}
	remove := make(map[int]bool, len(block))
	for _, c := range block {
		remove[c] = true
	}

	if ru == rv {
		base := removeMany(ind.Routes[ru].Customers, remove)
		return map[int][]int{ru: insertAfter(base, v, toInsert)}
	}

	newRu := removeMany(ind.Routes[ru].Customers, remove)
	newRv := insertAfter(ind.Routes[rv].Customers, v, toInsert)
	return map[int][]int{ru: newRu, rv: newRv}
}

// swapSingle exchanges the single customers u and v in place.
func swapSingle(ind *individual.Individual, ru, rv, u, v int) map[int][]int {
	if ru == rv {
		return map[int][]int{ru: substitute(ind.Routes[ru].Customers, map[int]int{u: v, v: u})}
	}
	return map[int][]int{
		ru: substitute(ind.Routes[ru].Customers, map[int]int{u: v}),
		rv: substitute(ind.Routes[rv].Customers, map[int]int{v: u}),
	}
}

// swapPairSingle exchanges block (u,x) for the single customer v.
func swapPairSingle(ind *individual.Individual, ru, rv, u, x, v int) map[int][]int {
	origRu := ind.Routes[ru].Customers
	origRv := ind.Routes[rv].Customers
	predU, hasPredU := predecessorOf(origRu, u)
	predV, hasPredV := predecessorOf(origRv, v)

	if ru == rv {
		out := make([]int, 0, len(origRu))
		for _, c := range origRu {
			if c == u {
				out = append(out, v)
			} else if c == v {
				out = append(out, u, x)
			} else if c != x {
				out = append(out, c)
			}
		}
		return map[int][]int{ru: out}
	}

	baseRu := removeMany(origRu, map[int]bool{u: true, x: true})
	baseRv := removeMany(origRv, map[int]bool{v: true})

	var newRu, newRv []int
	if hasPredU {
		newRu = insertAfter(baseRu, predU, []int{v})
	} else {
		newRu = insertAtFront(baseRu, []int{v})
	}
	if hasPredV {
		newRv = insertAfter(baseRv, predV, []int{u, x})
	} else {
		newRv = insertAtFront(baseRv, []int{u, x})
	}
	return map[int][]int{ru: newRu, rv: newRv}
}

// swapPairPair exchanges block (u,x) for block (v,y).
func swapPairPair(ind *individual.Individual, ru, rv, u, x, v, y int) map[int][]int {
	origRu := ind.Routes[ru].Customers
	origRv := ind.Routes[rv].Customers
	predU, hasPredU := predecessorOf(origRu, u)
	predV, hasPredV := predecessorOf(origRv, v)

	if ru == rv {
		out := make([]int, 0, len(origRu))
		for _, c := range origRu {
			if c == u {
				out = append(out, v, y)
			} else if c == v {
				out = append(out, u, x)
			} else if c != x && c != y {
				out = append(out, c)
			}
		}
		return map[int][]int{ru: out}
	}

	baseRu := removeMany(origRu, map[int]bool{u: true, x: true})
	baseRv := removeMany(origRv, map[int]bool{v: true, y: true})

	var newRu, newRv []int
	if hasPredU {
		newRu = insertAfter(baseRu, predU, []int{v, y})
	} else {
		newRu = insertAtFront(baseRu, []int{v, y})
	}
	if hasPredV {
		newRv = insertAfter(baseRv, predV, []int{u, x})
	} else {
		newRv = insertAtFront(baseRv, []int{u, x})
	}
	return map[int][]int{ru: newRu, rv: newRv}
}

// twoOptWithin reverses the segment of r between u and v, inclusive.
func twoOptWithin(ind *individual.Individual, r, u, v int) map[int][]int {
	customers := append([]int(nil), ind.Routes[r].Customers...)
	pu, pv := posOf(customers, u), posOf(customers, v)
	if pu > pv {
		pu, pv = pv, pu
	}
	reverseSeg(customers, pu, pv)
	return map[int][]int{r: customers}
}

// twoOptBetween exchanges the tails following u (in r1) and v (in r2),
// without reversing either tail — the same tail-swap the teacher's
// asymmetric 2-opt* applies, since both routes are open depot-to-depot
// paths and swapping tails alone already introduces the two new arcs
// (u, succ(v)) and (v, succ(u)).
func twoOptBetween(ind *individual.Individual, r1, r2, u, v int) (map[int][]int, bool) {
	c1 := ind.Routes[r1].Customers
	c2 := ind.Routes[r2].Customers
	pu := posOf(c1, u)
	pv := posOf(c2, v)
	if pu < 0 || pv < 0 {
		return nil, false
	}

	newR1 := make([]int, 0, len(c1))
	newR1 = append(newR1, c1[:pu+1]...)
	newR1 = append(newR1, c2[pv+1:]...)

	newR2 := make([]int, 0, len(c2))
	newR2 = append(newR2, c2[:pv+1]...)
	newR2 = append(newR2, c1[pu+1:]...)

	return map[int][]int{r1: newR1, r2: newR2}, true
}
