package genetic

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/localsearch"
	"github.com/katalvlaran/hgsrr/population"
	"github.com/katalvlaran/hgsrr/problem"
	"github.com/katalvlaran/hgsrr/rng"
	"github.com/katalvlaran/hgsrr/ruinrecreate"
)

// Engine owns one problem instance, one population, and the RNG substreams
// and annealing schedules the generational loop draws from.
type Engine struct {
	p         *problem.Problem
	opts      Options
	popOpts   population.Options
	splitOpts individual.SplitOptions
	rrOpts    ruinrecreate.Options
	pop       *population.Pop

	seedRNG, parentRNG, crossoverRNG, educationRNG, restartRNG *rand.Rand

	genSchedule   ruinrecreate.Schedule
	genStep       int
	eliteSchedule ruinrecreate.Schedule

	insertsSinceManage    int
	insertsSinceEliteHook int
	pendingElite          *individual.Individual

	generationsSinceImprovement int
	generation                  int

	runStart    time.Time
	runStartSet bool

	onImprovement func(generation int, best *individual.Individual)
}

// OnImprovement registers a callback invoked every time a newly inserted
// individual beats the global best, receiving the generation count at
// which it happened and the new best. Used by report.LiveStatus-style
// progress printing; nil (the default) disables the hook entirely.
func (e *Engine) OnImprovement(fn func(generation int, best *individual.Individual)) {
	e.onImprovement = fn
}

// New builds an Engine for problem p, seeded from rootSeed via the
// rng package's named substreams so every concern's draws are independent
// of draw order elsewhere in the engine.
func New(p *problem.Problem, rootSeed int64, opts Options, popOpts population.Options, rrOpts ruinrecreate.Options, splitOpts individual.SplitOptions) (*Engine, error) {
	if p.N() == 0 {
		return nil, ErrNoCustomers
	}

	n := p.N()
	genK := int(math.Ceil(opts.Gamma * float64(n)))
	if genK < 1 {
		genK = 1
	}
	eliteK := int(math.Ceil(opts.GammaElite * float64(n)))
	if eliteK < 1 {
		eliteK = 1
	}

	return &Engine{
		p:             p,
		opts:          opts,
		popOpts:       popOpts,
		splitOpts:     splitOpts,
		rrOpts:        rrOpts,
		pop:           population.New(popOpts, n, splitOpts.Penalty),
		seedRNG:       rng.Derive(rootSeed, rng.StreamSeed),
		parentRNG:     rng.Derive(rootSeed, rng.StreamParentSelect),
		crossoverRNG:  rng.Derive(rootSeed, rng.StreamCrossover),
		educationRNG:  rng.Derive(rootSeed, rng.StreamEducation),
		restartRNG:    rng.Derive(rootSeed, rng.StreamRestart),
		genSchedule:   ruinrecreate.NewSchedule(opts.T0, opts.Tf, genK),
		eliteSchedule: ruinrecreate.NewSchedule(opts.T0Elite, opts.TfElite, eliteK),
	}, nil
}

// Population exposes the engine's population, mainly for reporting.
func (e *Engine) Population() *population.Pop { return e.pop }

// SeedInitial fills the population with opts.InitialPopulationSize random,
// Split-and-educated individuals.
func (e *Engine) SeedInitial() {
	e.seedWith(e.seedRNG)
}

// seedWith fills the population with opts.InitialPopulationSize random,
// Split-and-educated individuals drawn from r.
func (e *Engine) seedWith(r *rand.Rand) {
	for i := 0; i < e.opts.InitialPopulationSize; i++ {
		tour := randomTour(e.p.N(), r)
		ind := individual.New(tour)
		individual.MustSplit(e.p, ind, e.splitOpts)
		localsearch.Run(e.p, ind, e.pop.Penalty(), e.educationRNG)
		ind = e.maybeMutate(ind)
		e.insert(ind)
	}
}

// restart clears the population on stagnation and immediately reseeds it
// from restartRNG, a substream independent of the initial seeding draws, so
// a restart produces a fresh population instead of leaving both
// subpopulations empty for the remainder of the run.
func (e *Engine) restart() {
	e.pop.Restart()
	e.seedWith(e.restartRNG)
}

// randomTour returns a uniformly random permutation of customers 1..n.
func randomTour(n int, r *rand.Rand) []int {
	perm := rng.PermRange(n, r)
	tour := make([]int, n)
	for i, v := range perm {
		tour[i] = v + 1
	}
	return tour
}

// maybeMutate applies the single generational R&R iteration (when enabled)
// with SA acceptance at the current step of the generational schedule.
func (e *Engine) maybeMutate(ind *individual.Individual) *individual.Individual {
	if !e.opts.RRMutation {
		return ind
	}
	candidate := ruinrecreate.OneIteration(e.p, ind, e.rrOpts, e.splitOpts, e.educationRNG)
	temp := e.genSchedule.Temp(e.genStep % e.genSchedule.Len())
	e.genStep++
	if ruinrecreate.Accept(ind, candidate, temp, e.educationRNG) {
		return candidate
	}
	return ind
}

// insert commits ind to the population, runs survivor selection, steps the
// penalty controller on its cadence, tracks global-best improvement for the
// restart trigger, and schedules elite education when ind ranks among the
// top NumElites feasible individuals.
func (e *Engine) insert(ind *individual.Individual) {
	prevBest := math.Inf(1)
	if e.pop.Best != nil {
		prevBest = e.pop.Best.PenalisedCost
	}

	e.pop.Insert(ind)
	e.pop.TrimToMu()

	e.insertsSinceManage++
	if e.insertsSinceManage >= e.popOpts.ManageEvery {
		e.pop.ManagePenalty()
		e.splitOpts.Penalty = e.pop.Penalty()
		e.insertsSinceManage = 0
	}

	if e.pop.Best != nil && e.pop.Best.PenalisedCost < prevBest-1e-9 {
		e.generationsSinceImprovement = 0
		if e.onImprovement != nil {
			e.onImprovement(e.generation, e.pop.Best)
		}
	}

	if e.opts.EliteEducation && e.eliteEducationAllowed() && ind.Feasible && e.isElite(ind) {
		e.pendingElite = ind
	}

	e.insertsSinceEliteHook++
	if e.pendingElite != nil && e.insertsSinceEliteHook >= e.opts.EliteEveryInserts {
		e.runEliteEducation()
		e.insertsSinceEliteHook = 0
	}
}

// isElite reports whether fewer than NumElites other feasible individuals
// have a strictly lower penalised cost than ind, i.e. whether ind ranks
// among the top NumElites of the feasible set.
func (e *Engine) isElite(ind *individual.Individual) bool {
	rank := 0
	for _, other := range e.pop.Feasible {
		if other != ind && other.PenalisedCost < ind.PenalisedCost {
			rank++
		}
	}
	return rank < e.popOpts.NumElites
}

// eliteEducationAllowed reports whether elite education may still be
// scheduled, honoring opts.EliteEducationTimeBased: once
// EliteEducationTimeFraction of a bounded TimeLimit has elapsed since the
// run started, no further elite passes are scheduled (ordinary generations
// get the remaining budget to themselves). Always true when time-based
// gating is off, TimeLimit is unbounded, or Run hasn't recorded a start
// time yet (e.g. SeedInitial called standalone, outside Run).
func (e *Engine) eliteEducationAllowed() bool {
	if !e.opts.EliteEducationTimeBased || e.opts.TimeLimit <= 0 || !e.runStartSet {
		return true
	}
	elapsed := time.Since(e.runStart)
	return elapsed < time.Duration(float64(e.opts.TimeLimit)*e.opts.EliteEducationTimeFraction)
}

// RunGeneration performs one full generation: parent selection, OX
// crossover, Split + local search education, optional R&R mutation, and
// insertion, followed by a restart check.
func (e *Engine) RunGeneration() {
	e.generation++

	union := e.pop.Union()
	if len(union) < 2 {
		return
	}

	parentA := binaryTournament(union, e.parentRNG)
	parentB := binaryTournament(union, e.parentRNG)

	childTour := orderCrossover(parentA.Tour, parentB.Tour, e.crossoverRNG)
	child := individual.New(childTour)
	individual.MustSplit(e.p, child, e.splitOpts)
	localsearch.Run(e.p, child, e.pop.Penalty(), e.educationRNG)

	child = e.maybeMutate(child)
	e.insert(child)

	e.generationsSinceImprovement++
	if e.popOpts.RestartAfter > 0 && e.generationsSinceImprovement >= e.popOpts.RestartAfter {
		e.restart()
		e.generationsSinceImprovement = 0
	}
}

// Run seeds the population if empty, then runs generations until
// opts.TimeLimit elapses or opts.MaxNoImprovement generations pass without
// a global-best improvement (whichever first; either may be zero/disabled),
// and returns the best feasible individual found.
func (e *Engine) Run() *individual.Individual {
	e.runStart = time.Now()
	e.runStartSet = true

	if len(e.pop.Union()) == 0 {
		e.SeedInitial()
	}

	var deadline time.Time
	useDeadline := e.opts.TimeLimit > 0
	if useDeadline {
		deadline = e.runStart.Add(e.opts.TimeLimit)
	}

	for step := 0; ; step++ {
		e.RunGeneration()

		if e.opts.MaxNoImprovement > 0 && e.generationsSinceImprovement >= e.opts.MaxNoImprovement {
			break
		}
		if useDeadline && step&63 == 0 && time.Now().After(deadline) {
			break
		}
	}

	return e.pop.Best
}
