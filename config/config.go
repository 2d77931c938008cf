package config

import (
	"flag"
	"time"

	"github.com/katalvlaran/hgsrr/genetic"
	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/population"
	"github.com/katalvlaran/hgsrr/problem"
	"github.com/katalvlaran/hgsrr/ruinrecreate"
)

// Default returns a fully populated Config with the classical HGS-CVRP
// parameter set (mirroring population.DefaultOptions and
// ruinrecreate.DefaultOptions) plus run-control defaults: a 30s time
// limit, non-deterministic seeding, no iteration cap, distance table
// precomputed up to 1000 customers, no rounding.
func Default() Config {
	return Config{
		TimeLimit:                       30 * time.Second,
		Deterministic:                   false,
		Seed:                            0,
		MaxIterationsWithoutImprovement: 0,
		RestartAfterNoImprovement:       20000,
		PrecomputeDistanceSizeLimit:     1000,
		RoundDistances:                  false,

		MinPopulationSize:           25,
		InitialIndividuals:          100,
		PopulationLambda:            40,
		LocalSearchGranularity:      10,
		FeasibilityProportionTarget: 0.2,
		NumDiversityClosest:         5,
		NumElites:                   4,

		EliteEducation:                 true,
		RRMutation:                     true,
		AverageRuinCardinality:         10,
		MaxRuinStringLength:            10,
		RuinAlpha:                      0.01,
		BlinkProbability:               0.01,
		RRStartTemp:                    100,
		RRFinalTemp:                    0.1,
		RRGamma:                        0.1,
		EliteEducationStartTemp:        200,
		EliteEducationFinalTemp:        0.01,
		EliteEducationGamma:            1.0,
		EliteEducationProblemSizeLimit: 0,
		EliteEducationTimeBased:        false,
		EliteEducationTimeFraction:     1.0,
	}
}

// Validate reports the first Configuration-kind error found, per spec.md
// §7's validation-at-startup contract: a non-positive time limit, bad
// population sizing, a non-positive granularity, a feasibility target
// outside (0, 1), an annealing schedule that cannot cool (start temp not
// strictly above its floor), or a no-improvement run-termination bound that
// could never fire before the population's own restart (restart always
// zeroes the same counter Run checks, so MaxIterationsWithoutImprovement
// must stay strictly below RestartAfterNoImprovement whenever both are
// enabled).
func (c Config) Validate() error {
	if c.TimeLimit <= 0 {
		return ErrNonPositiveTimeLimit
	}
	if c.MinPopulationSize <= 0 || c.InitialIndividuals <= 0 || c.PopulationLambda <= 0 ||
		c.InitialIndividuals < c.MinPopulationSize {
		return ErrInvalidPopulationSizing
	}
	if c.LocalSearchGranularity <= 0 {
		return ErrInvalidGranularity
	}
	if c.MaxIterationsWithoutImprovement > 0 && c.RestartAfterNoImprovement > 0 &&
		c.MaxIterationsWithoutImprovement >= c.RestartAfterNoImprovement {
		return ErrNoImprovementBoundUnreachable
	}
	if c.FeasibilityProportionTarget <= 0 || c.FeasibilityProportionTarget >= 1 {
		return ErrInvalidFeasibilityTarget
	}
	if c.RRStartTemp <= 0 || c.RRFinalTemp <= 0 || c.RRStartTemp <= c.RRFinalTemp {
		return ErrInvalidAnnealingSchedule
	}
	if c.EliteEducation {
		if c.EliteEducationStartTemp <= 0 || c.EliteEducationFinalTemp <= 0 ||
			c.EliteEducationStartTemp <= c.EliteEducationFinalTemp {
			return ErrInvalidAnnealingSchedule
		}
	}
	return nil
}

// ApplyFlags registers CLI override flags on fs and binds them into c,
// mirroring spec.md §6's "provided command-line arguments override file
// values". Call fs.Parse after this, then read the overridden values
// straight from c's fields: ApplyFlags returns nothing, and the flags
// write into c in place via the pointer receiver.
func (c *Config) ApplyFlags(fs *flag.FlagSet) {
	fs.Func("t", "override time_limit, in seconds", func(s string) error {
		d, err := time.ParseDuration(s + "s")
		if err != nil {
			return err
		}
		c.TimeLimit = d
		return nil
	})
	fs.BoolVar(&c.RoundDistances, "r", c.RoundDistances, "force integer-rounded distances")
	fs.BoolVar(&c.Deterministic, "deterministic", c.Deterministic, "derive RNG substreams from --seed instead of wall-clock entropy")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "root seed used when --deterministic is set")
}

// ProblemOptions translates the instance-parsing knobs into problem.Options.
func (c Config) ProblemOptions() problem.Options {
	return problem.Options{
		PrecomputeDistanceSizeLimit: c.PrecomputeDistanceSizeLimit,
		RoundDistances:              c.RoundDistances,
		Granularity:                  c.LocalSearchGranularity,
	}
}

// SplitOptions translates the penalty-related knobs into
// individual.SplitOptions. The capacity penalty itself starts at the
// classical HGS-CVRP default (1.0) and is thereafter owned by
// population.Pop's adaptive controller, not by Config.
func (c Config) SplitOptions() individual.SplitOptions {
	return individual.DefaultSplitOptions()
}

// PopulationOptions translates population-management knobs into
// population.Options.
func (c Config) PopulationOptions() population.Options {
	opts := population.DefaultOptions()
	opts.Mu = c.MinPopulationSize
	opts.Lambda = c.PopulationLambda
	opts.NumClosest = c.NumDiversityClosest
	opts.NumElites = c.NumElites
	opts.TargetFeasibleFraction = c.FeasibilityProportionTarget
	if c.RestartAfterNoImprovement > 0 {
		opts.RestartAfter = c.RestartAfterNoImprovement
	}
	return opts
}

// RuinRecreateOptions translates the ruin/recreate knobs into
// ruinrecreate.Options.
func (c Config) RuinRecreateOptions() ruinrecreate.Options {
	return ruinrecreate.Options{
		AvgCardinality:  c.AverageRuinCardinality,
		MaxStringLength: c.MaxRuinStringLength,
		Alpha:           c.RuinAlpha,
		Blink:           c.BlinkProbability,
	}
}

// GeneticOptions translates run-control and annealing knobs into
// genetic.Options for an instance of n customers. EliteEveryInserts is
// derived from MinPopulationSize (roughly one elite-education attempt per
// population-sized batch of inserts) since spec.md leaves its exact
// cadence unspecified. EliteEducationProblemSizeLimit disables elite
// education outright on instances larger than the limit (zero means
// unbounded).
func (c Config) GeneticOptions(n int) genetic.Options {
	eliteEducation := c.EliteEducation
	if c.EliteEducationProblemSizeLimit > 0 && n > c.EliteEducationProblemSizeLimit {
		eliteEducation = false
	}
	return genetic.Options{
		TimeLimit:                  c.TimeLimit,
		MaxNoImprovement:           c.MaxIterationsWithoutImprovement,
		InitialPopulationSize:      c.InitialIndividuals,
		RRMutation:                 c.RRMutation,
		Gamma:                      c.RRGamma,
		GammaElite:                 c.EliteEducationGamma,
		T0:                         c.RRStartTemp,
		Tf:                         c.RRFinalTemp,
		T0Elite:                    c.EliteEducationStartTemp,
		TfElite:                    c.EliteEducationFinalTemp,
		EliteEveryInserts:          c.MinPopulationSize,
		EliteEducation:             eliteEducation,
		EliteEducationTimeBased:    c.EliteEducationTimeBased,
		EliteEducationTimeFraction: c.EliteEducationTimeFraction,
	}
}
