package population

import "errors"

// ErrEmptySubpopulation indicates a biased-fitness or survivor-selection
// pass was asked to rank an empty set.
var ErrEmptySubpopulation = errors.New("population: subpopulation is empty")

// Options configures population sizing, diversity, and the adaptive
// penalty controller.
type Options struct {
	// Mu is the target subpopulation size survivor selection trims to.
	Mu int
	// Lambda is the overflow above Mu that triggers survivor selection.
	Lambda int
	// NumClosest is N^C, the number of closest siblings averaged for an
	// individual's diversity contribution.
	NumClosest int
	// NumElites is the count of top-ranked individuals (by cost) treated
	// as elite when computing biased fitness's diversity weight.
	NumElites int

	// ManageEvery is P^manage: the penalty controller recomputes the
	// recent-feasible fraction every this many inserts.
	ManageEvery int
	// TargetFeasibleFraction is xi^REF, the feasibility fraction the
	// controller steers toward.
	TargetFeasibleFraction float64
	// FeasibleTolerance is delta, the dead-band half-width around
	// TargetFeasibleFraction within which the penalty is left unchanged.
	FeasibleTolerance float64
	// PenaltyStep is the fractional adjustment (1+step) applied to the
	// penalty when the recent-feasible fraction falls outside the
	// tolerance band.
	PenaltyStep float64
	// PenaltyMin and PenaltyMax clamp the penalty controller's output.
	PenaltyMin, PenaltyMax float64

	// RestartAfter is the number of consecutive generations without a
	// global-best improvement that triggers a restart.
	RestartAfter int
}

// DefaultOptions returns the classical HGS-CVRP parameter set: mu=25,
// lambda=40, N^C=5, nElites=4, P^manage=100, xi^REF=0.2, delta=0.05,
// step=0.2, penalty clamped to [0.1, 10000], restart after 20000
// generations without improvement.
func DefaultOptions() Options {
	return Options{
		Mu:                     25,
		Lambda:                 40,
		NumClosest:             5,
		NumElites:              4,
		ManageEvery:            100,
		TargetFeasibleFraction: 0.2,
		FeasibleTolerance:      0.05,
		PenaltyStep:            0.2,
		PenaltyMin:             0.1,
		PenaltyMax:             10000,
		RestartAfter:           20000,
	}
}
