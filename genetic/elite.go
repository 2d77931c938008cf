package genetic

import (
	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/localsearch"
	"github.com/katalvlaran/hgsrr/rng"
	"github.com/katalvlaran/hgsrr/ruinrecreate"
)

// runEliteEducation drains e.pendingElite and, if set, runs the long elite
// R&R schedule on it. A fresh substream is derived per call so repeated
// elite passes don't replay the same annealing draws. Only when
// ruinrecreate.RunAnnealed signals that some step along the way beat the
// elite's starting cost is a further local-search pass and the strictly-
// better-cost swap into Feasible worth paying for.
func (e *Engine) runEliteEducation() {
	elite := e.pendingElite
	e.pendingElite = nil
	if elite == nil {
		return
	}

	substream := rng.Child(e.educationRNG, rng.StreamEliteEducation)
	result, improved := ruinrecreate.RunAnnealed(e.p, elite, e.rrOpts, e.splitOpts, e.eliteSchedule, substream)
	if !improved {
		return
	}

	localsearch.Run(e.p, result, e.pop.Penalty(), substream)
	if result.PenalisedCost < elite.PenalisedCost-eliteEps {
		e.replaceInFeasible(elite, result)
	}
}

// replaceInFeasible swaps old for new in the feasible subpopulation (a
// no-op if old has since been trimmed out, or if new is not feasible) and
// updates the global best when new beats it, matching Insert's own
// best-tracking rule.
func (e *Engine) replaceInFeasible(old, new *individual.Individual) {
	if new.CapacityExcess != 0 {
		return
	}
	for i, ind := range e.pop.Feasible {
		if ind == old {
			e.pop.Feasible[i] = new
			break
		}
	}
	if e.pop.Best == nil || new.PenalisedCost < e.pop.Best.PenalisedCost {
		e.pop.Best = new.Clone()
	}
}

// eliteEps is the strict-improvement tolerance for the elite replacement
// decision, mirroring ruinrecreate's own eps.
const eliteEps = 1e-9
