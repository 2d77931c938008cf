package localsearch

import "errors"

// ErrRouteNotFound indicates a move referenced a customer whose RouteOf
// entry does not resolve to a valid index into Individual.Routes — an
// invariant violation, never a recoverable condition.
var ErrRouteNotFound = errors.New("localsearch: customer not assigned to a route")

// eps is the strict-improvement tolerance: a candidate move is applied only
// when its penalised-cost delta is below -eps, never merely <= 0, so that
// float64 rounding noise cannot cause an infinite apply/revert cycle.
const eps = 1e-9

// moveKind tags the eight moves in the Granular RI bundle. Dispatched
// through a closed enum rather than an interface, since the bundle is
// fixed and every move shares the same evaluate-then-apply shape.
type moveKind int

const (
	moveRelocateSingle       moveKind = iota // relocate u after v
	moveRelocatePair                         // relocate (u, succ(u)) after v
	moveRelocatePairReversed                 // relocate (u, succ(u)) after v, reversed
	moveSwapSingle                           // exchange u and v
	moveSwapPairSingle                       // exchange (u, succ(u)) with v
	moveSwapPairPair                         // exchange (u, succ(u)) with (v, succ(v))
	moveTwoOptWithinRoute                    // reverse the segment between u and v
	moveTwoOptBetweenRoutes                  // exchange the tails following u and v
)

// allMoves lists the bundle in the order Phase A tries them for a given
// (u, v) pair; first strictly-improving move wins.
var allMoves = []moveKind{
	moveRelocateSingle,
	moveRelocatePair,
	moveRelocatePairReversed,
	moveSwapSingle,
	moveSwapPairSingle,
	moveSwapPairPair,
	moveTwoOptWithinRoute,
	moveTwoOptBetweenRoutes,
}
