package ruinrecreate

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// Schedule is a geometric-cooling temperature profile from T0 down to Tf
// over K steps, shared by the per-generation annealing loop and the longer
// elite-education loop (each builds its own Schedule with its own K and
// starting temperature, per spec.md §4.4's gamma vs gamma^E split).
type Schedule struct {
	t0, tf float64
	k      int
}

// NewSchedule builds a Schedule. k must be >= 1; t0 must be > 0. tf <= 0 is
// treated as a vanishingly small but positive floor so Temp never reaches
// exactly zero (which would make Accept reject every non-improving delta
// outright instead of approaching that limit smoothly).
func NewSchedule(t0, tf float64, k int) Schedule {
	if k < 1 {
		k = 1
	}
	if tf <= 0 {
		tf = 1e-9
	}
	return Schedule{t0: t0, tf: tf, k: k}
}

// Len returns the number of steps K this schedule spans.
func (s Schedule) Len() int { return s.k }

// Temp returns the temperature at step (0-indexed, clamped to [0, K-1]):
// T0 * (Tf/T0)^(step/(K-1)), degenerating to T0 when K==1.
func (s Schedule) Temp(step int) float64 {
	if step < 0 {
		step = 0
	}
	if step >= s.k {
		step = s.k - 1
	}
	if s.k <= 1 {
		return s.t0
	}
	frac := float64(step) / float64(s.k-1)
	return s.t0 * math.Pow(s.tf/s.t0, frac)
}

// Accept applies the simulated-annealing acceptance rule: always accept a
// candidate that does not worsen penalised cost, otherwise accept with
// probability exp(-delta/temp) where delta = candidate - current > 0.
func Accept(current, candidate *individual.Individual, temp float64, rng *rand.Rand) bool {
	delta := candidate.PenalisedCost - current.PenalisedCost
	if delta <= 0 {
		return true
	}
	return rng.Float64() < math.Exp(-delta/temp)
}

// OneIteration runs a single ruin+recreate+re-split pass on a clone of ind,
// leaving ind itself untouched, and returns the resulting candidate.
func OneIteration(p *problem.Problem, ind *individual.Individual, rrOpts Options, splitOpts individual.SplitOptions, rng *rand.Rand) *individual.Individual {
	candidate := ind.Clone()
	removed := Ruin(p, candidate, rrOpts, rng)
	Recreate(p, candidate, removed, rrOpts, splitOpts.Penalty, rng)
	individual.SyncTourFromRoutes(candidate)
	individual.MustSplit(p, candidate, splitOpts)
	return candidate
}

// RunAnnealed drives OneIteration + Accept across every step of schedule,
// always advancing "current" to whichever candidate SA accepted (so a
// non-improving but accepted move can still be explored further), and
// reports whether any candidate along the way beat ind's starting cost —
// the signal elite education uses to decide whether a further Split +
// local-search pass is worth running at all.
func RunAnnealed(p *problem.Problem, ind *individual.Individual, rrOpts Options, splitOpts individual.SplitOptions, schedule Schedule, rng *rand.Rand) (result *individual.Individual, improved bool) {
	current := ind
	initialCost := ind.PenalisedCost

	for step := 0; step < schedule.Len(); step++ {
		candidate := OneIteration(p, current, rrOpts, splitOpts, rng)
		if candidate.PenalisedCost < initialCost-eps {
			improved = true
		}
		temp := schedule.Temp(step)
		if Accept(current, candidate, temp, rng) {
			current = candidate
		}
	}

	return current, improved
}

// eps is the strict-improvement tolerance used when deciding whether an R&R
// step counts as having improved on the starting individual.
const eps = 1e-9
