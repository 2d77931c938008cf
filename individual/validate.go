package individual

import "github.com/katalvlaran/hgsrr/problem"

// validateTol is the tolerance ValidateAggregates is checked against from
// MustSplit — loose enough to absorb floating-point drift across repeated
// Split/local-search passes, tight enough to catch a real aggregate bug.
const validateTol = 1e-6

// MustSplit calls Split and then checks the decoded individual against
// every runtime invariant (coverage, chain consistency, aggregate
// correctness), panicking with the violated invariant's name if any check
// fails. Per SPEC_FULL.md §7 and the sentinel errors above, a Split failure
// or an invariant mismatch is a programmer bug — a malformed giant tour, a
// SlackFactor too tight to admit any partition, or a bookkeeping bug in a
// local-search move — never a recoverable, user-facing condition, so the
// real generational loop and R&R loop call this instead of discarding
// Split's error.
func MustSplit(p *problem.Problem, ind *Individual, opts SplitOptions) {
	if err := Split(p, ind, opts); err != nil {
		panic("individual: runtime invariant violation: " + err.Error())
	}
	if err := ValidateCoverage(ind, p.N()); err != nil {
		panic("individual: runtime invariant violation: " + err.Error())
	}
	if err := ValidateChain(ind); err != nil {
		panic("individual: runtime invariant violation: " + err.Error())
	}
	if err := ValidateAggregates(ind, opts.Penalty, validateTol); err != nil {
		panic("individual: runtime invariant violation: " + err.Error())
	}
}

// ValidateCoverage checks that ind.Tour and ind.Routes both cover 1..n
// exactly once, per the coverage invariant in SPEC_FULL.md §8 (property 1).
func ValidateCoverage(ind *Individual, n int) error {
	if len(ind.Tour) != n {
		return ErrBrokenChain
	}
	seenTour := make([]bool, n+1)
	for _, c := range ind.Tour {
		if c < 1 || c > n || seenTour[c] {
			return ErrBrokenChain
		}
		seenTour[c] = true
	}

	seenRoute := make([]bool, n+1)
	count := 0
	for _, r := range ind.Routes {
		for _, c := range r.Customers {
			if c < 1 || c > n || seenRoute[c] {
				return ErrBrokenChain
			}
			seenRoute[c] = true
			count++
		}
	}
	if count != n {
		return ErrBrokenChain
	}

	return nil
}

// ValidateChain walks every route's linked-list view and checks it agrees
// with Succ/Pred/RouteOf (property: "after any local-search move the
// aggregates and linked-list views are consistent").
func ValidateChain(ind *Individual) error {
	for ri, r := range ind.Routes {
		prev := depot
		for _, c := range r.Customers {
			if ind.Pred[c] != prev {
				return ErrBrokenChain
			}
			if ind.RouteOf[c] != ri {
				return ErrBrokenChain
			}
			if prev != depot && ind.Succ[prev] != c {
				return ErrBrokenChain
			}
			prev = c
		}
		if ind.Succ[prev] != depot {
			return ErrBrokenChain
		}
	}
	return nil
}

// ValidateAggregates re-sums Distance/CapacityExcess from the routes'
// cached Distance and Excess and compares against the individual's cached
// totals within tol, per property 2 in SPEC_FULL.md §8. The per-route
// values themselves are not recomputed from the customers.
func ValidateAggregates(ind *Individual, penalty, tol float64) error {
	var dist float64
	var excess int
	for _, r := range ind.Routes {
		dist += r.Distance
		excess += r.Excess
	}
	if abs(dist-ind.Distance) > tol {
		return ErrAggregateMismatch
	}
	if excess != ind.CapacityExcess {
		return ErrAggregateMismatch
	}
	want := dist + penalty*float64(excess)
	if abs(want-ind.PenalisedCost) > tol {
		return ErrAggregateMismatch
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
