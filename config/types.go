package config

import (
	"errors"
	"time"
)

// ErrNonPositiveTimeLimit indicates TimeLimit <= 0.
var ErrNonPositiveTimeLimit = errors.New("config: time_limit must be positive")

// ErrInvalidPopulationSizing indicates MinPopulationSize, InitialIndividuals,
// or PopulationLambda is non-positive, or InitialIndividuals is smaller than
// MinPopulationSize.
var ErrInvalidPopulationSizing = errors.New("config: invalid population sizing")

// ErrInvalidGranularity indicates LocalSearchGranularity <= 0.
var ErrInvalidGranularity = errors.New("config: local_search_granularity must be positive")

// ErrInvalidFeasibilityTarget indicates FeasibilityProportionTarget is
// outside (0, 1).
var ErrInvalidFeasibilityTarget = errors.New("config: feasibility_proportion_target must be in (0, 1)")

// ErrInvalidAnnealingSchedule indicates a start/final temperature pair is
// non-positive or a start temperature does not exceed its final floor.
var ErrInvalidAnnealingSchedule = errors.New("config: invalid annealing schedule")

// ErrNoImprovementBoundUnreachable indicates MaxIterationsWithoutImprovement
// is set at or above RestartAfterNoImprovement, which would make the
// no-improvement run-termination path unreachable: the population restart
// would always clear the counter first.
var ErrNoImprovementBoundUnreachable = errors.New("config: max_iterations_without_improvement must be below restart_after_no_improvement")

// Config enumerates every tunable of a solving run, grouped the way
// spec.md §6 groups them: run control, population management, and
// ruin-and-recreate/elite-education.
type Config struct {
	// --- Run control ---

	// TimeLimit bounds wall-clock solving time. Must be positive.
	TimeLimit time.Duration
	// Deterministic, when true, derives every RNG substream from Seed
	// instead of a wall-clock-seeded root.
	Deterministic bool
	// Seed is the root seed used when Deterministic is true.
	Seed int64
	// MaxIterationsWithoutImprovement bounds the run by generations
	// without a global-best improvement — the run terminates once this
	// many pass, independent of any population restart. Zero means
	// unbounded. Must stay strictly less than RestartAfterNoImprovement
	// when both are positive, or the restart would always preempt this
	// termination path (Validate enforces the ordering).
	MaxIterationsWithoutImprovement int

	// RestartAfterNoImprovement bounds the population's own restart
	// trigger: this many generations without a global-best improvement
	// clears and reseeds both subpopulations, independent of the run's
	// overall termination bound above. Zero means restarts never fire.
	RestartAfterNoImprovement int
	// PrecomputeDistanceSizeLimit is the largest N for which the full
	// distance table is precomputed and cached.
	PrecomputeDistanceSizeLimit int
	// RoundDistances, if true, rounds every arc distance to the nearest
	// integer.
	RoundDistances bool

	// --- Population management ---

	// MinPopulationSize is mu, the target subpopulation size survivor
	// selection trims to.
	MinPopulationSize int
	// InitialIndividuals is mu^I, the number of random individuals seeded
	// before the generational loop begins.
	InitialIndividuals int
	// PopulationLambda is lambda, the overflow above mu that triggers
	// survivor selection.
	PopulationLambda int
	// LocalSearchGranularity is Gamma, the size of each customer's
	// granular neighbour list.
	LocalSearchGranularity int
	// FeasibilityProportionTarget is xi^REF, the feasibility fraction the
	// penalty controller steers toward.
	FeasibilityProportionTarget float64
	// NumDiversityClosest is N^C, the number of closest siblings averaged
	// for an individual's diversity contribution.
	NumDiversityClosest int
	// NumElites is N^E, the count of top-ranked individuals treated as
	// elite when computing biased fitness.
	NumElites int

	// --- Ruin-and-recreate / elite education ---

	// EliteEducation enables the elite-education pass entirely.
	EliteEducation bool
	// RRMutation enables the single ruin-and-recreate step inside
	// ordinary generational education.
	RRMutation bool
	// AverageRuinCardinality is C-bar, the average-removal knob that,
	// together with MaxRuinStringLength, bounds the number of ruin
	// strings k_s drawn per ruin step.
	AverageRuinCardinality float64
	// MaxRuinStringLength is L^max, the hard cap on a single ruin
	// string's length.
	MaxRuinStringLength int
	// RuinAlpha is alpha, the geometric distribution parameter governing
	// how much of a ruined route's preserved segment survives.
	RuinAlpha float64
	// BlinkProbability is beta, the probability recreate skips what
	// would otherwise be the best insertion point for a customer.
	BlinkProbability float64
	// RRStartTemp and RRFinalTemp are T_0 and T_f, the generational
	// annealing schedule's start and floor temperatures.
	RRStartTemp, RRFinalTemp float64
	// RRGamma is gamma, scaling the generational schedule's length:
	// K = ceil(gamma*N).
	RRGamma float64
	// EliteEducationStartTemp and EliteEducationFinalTemp are T_0^E and
	// the elite schedule's floor temperature.
	EliteEducationStartTemp, EliteEducationFinalTemp float64
	// EliteEducationGamma is gamma^E, scaling the elite schedule's
	// length: K^E = ceil(gamma^E*N).
	EliteEducationGamma float64
	// EliteEducationProblemSizeLimit caps N above which elite education
	// is skipped entirely (the long schedule becomes too expensive per
	// generation on very large instances). Zero means unbounded.
	EliteEducationProblemSizeLimit int
	// EliteEducationTimeBased, if true, restricts elite education to the
	// first EliteEducationTimeFraction of the wall-clock time budget.
	EliteEducationTimeBased bool
	// EliteEducationTimeFraction is the fraction (0, 1] of TimeLimit
	// during which elite education is allowed to run when
	// EliteEducationTimeBased is set.
	EliteEducationTimeFraction float64
}
