package population

// ManagePenalty recomputes the fraction of recent inserts (over the last
// ManageEvery, or fewer before the window fills) that landed in the
// feasible set, and steps the capacity penalty toward
// TargetFeasibleFraction: multiplied by (1+PenaltyStep) when the fraction
// is below the tolerance band, divided by it when above, left unchanged
// inside the band, and always clamped to [PenaltyMin, PenaltyMax].
//
// Callers invoke this every ManageEvery inserts, per the genetic engine's
// periodic penalty-update hook.
func (pop *Pop) ManagePenalty() {
	if len(pop.recentFeasible) == 0 {
		return
	}

	feasibleCount := 0
	for _, f := range pop.recentFeasible {
		if f {
			feasibleCount++
		}
	}
	frac := float64(feasibleCount) / float64(len(pop.recentFeasible))

	switch {
	case frac < pop.opts.TargetFeasibleFraction-pop.opts.FeasibleTolerance:
		pop.penalty *= 1 + pop.opts.PenaltyStep
	case frac > pop.opts.TargetFeasibleFraction+pop.opts.FeasibleTolerance:
		pop.penalty /= 1 + pop.opts.PenaltyStep
	}

	if pop.penalty < pop.opts.PenaltyMin {
		pop.penalty = pop.opts.PenaltyMin
	}
	if pop.penalty > pop.opts.PenaltyMax {
		pop.penalty = pop.opts.PenaltyMax
	}
}
