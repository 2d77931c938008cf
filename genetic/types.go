package genetic

import (
	"errors"
	"time"
)

// ErrNoCustomers indicates Engine was constructed for a problem with zero
// customers — nothing to search over.
var ErrNoCustomers = errors.New("genetic: problem has no customers")

// Options configures the generational loop's termination, R&R mutation, and
// annealing schedule parameters. Field names mirror spec.md §4.4/§4.6's
// gamma/T0/Tf notation.
type Options struct {
	// TimeLimit is the wall-clock budget for Run. Zero means unbounded
	// (Run then relies solely on MaxNoImprovement).
	TimeLimit time.Duration

	// MaxNoImprovement optionally bounds the run by generations without a
	// global-best improvement, independent of the population's own
	// restart threshold. Zero means unbounded.
	MaxNoImprovement int

	// InitialPopulationSize is the number of random individuals seeded
	// before the generational loop begins.
	InitialPopulationSize int

	// RRMutation enables the single ruin-and-recreate step inside
	// ordinary generational education (step 3 of spec.md §4.6).
	RRMutation bool

	// Gamma and GammaElite set the generational and elite annealing
	// schedule lengths: K = ceil(Gamma*N), K^E = ceil(GammaElite*N).
	Gamma, GammaElite float64

	// T0, Tf are the generational schedule's start/floor temperatures;
	// T0Elite, TfElite are the elite schedule's.
	T0, Tf, T0Elite, TfElite float64

	// EliteEveryInserts spaces out how often a scheduled elite-education
	// pass is actually run, in units of population inserts.
	EliteEveryInserts int

	// EliteEducation enables the elite-education pass entirely. When
	// false, no individual is ever scheduled into pendingElite.
	EliteEducation bool

	// EliteEducationTimeBased, if true, stops scheduling elite-education
	// passes once EliteEducationTimeFraction of TimeLimit has elapsed,
	// leaving the remaining budget for ordinary generations only.
	EliteEducationTimeBased bool

	// EliteEducationTimeFraction is the fraction (0, 1] of TimeLimit
	// during which elite education may run when EliteEducationTimeBased
	// is set. Ignored when EliteEducationTimeBased is false or TimeLimit
	// is zero (unbounded run).
	EliteEducationTimeFraction float64
}

// DefaultOptions returns a conservative, always-terminating configuration:
// a 30s time limit, 100 random seeds, R&R mutation enabled, gamma=0.1,
// gammaElite=1.0, T0=100 cooling to Tf=0.1, T0Elite=200 cooling to
// TfElite=0.01, and an elite-education hook every 50 inserts.
func DefaultOptions() Options {
	return Options{
		TimeLimit:             30 * time.Second,
		InitialPopulationSize: 100,
		RRMutation:            true,
		Gamma:                 0.1,
		GammaElite:            1.0,
		T0:                    100,
		Tf:                    0.1,
		T0Elite:               200,
		TfElite:               0.01,
		EliteEveryInserts:     50,
		EliteEducation:        true,
		EliteEducationTimeFraction: 1.0,
	}
}
