package genetic_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/hgsrr/genetic"
	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/population"
	"github.com/katalvlaran/hgsrr/problem"
	"github.com/katalvlaran/hgsrr/ruinrecreate"
	"github.com/stretchr/testify/require"
)

// buildLine returns a depot-at-origin, customers-on-a-line instance: node i
// sits at (i, 0) with demand 1, capacity 3.
func buildLine(t *testing.T, n int) *problem.Problem {
	t.Helper()
	b := problem.NewBuilder(problem.WithOptions(problem.Options{
		PrecomputeDistanceSizeLimit: 200,
		Granularity:                 5,
	}))
	require.NoError(t, b.AddNode(0, 0, 0, 0))
	for i := 1; i <= n; i++ {
		require.NoError(t, b.AddNode(i, 1, float64(i), 0))
	}
	require.NoError(t, b.SetCapacity(3))
	p, err := b.Build()
	require.NoError(t, err)
	return p
}

func smallPopOptions() population.Options {
	opts := population.DefaultOptions()
	opts.Mu = 6
	opts.Lambda = 6
	opts.NumClosest = 3
	opts.NumElites = 2
	opts.ManageEvery = 10
	opts.RestartAfter = 1000
	return opts
}

func smallEngineOptions() genetic.Options {
	opts := genetic.DefaultOptions()
	opts.TimeLimit = 0
	opts.MaxNoImprovement = 40
	opts.InitialPopulationSize = 12
	opts.RRMutation = true
	opts.Gamma = 0.3
	opts.GammaElite = 0.5
	opts.EliteEveryInserts = 5
	return opts
}

func TestNew_RejectsEmptyProblem(t *testing.T) {
	// A Problem always has N>=1 once Build succeeds (Builder enforces
	// ErrNoCustomers below that), so genetic.ErrNoCustomers is only
	// reachable via a zero-value *problem.Problem — exercise that directly.
	var zero problem.Problem
	_, err := genetic.New(&zero, 1, smallEngineOptions(), smallPopOptions(), ruinrecreate.DefaultOptions(), individual.DefaultSplitOptions())
	require.ErrorIs(t, err, genetic.ErrNoCustomers)
}

// highPenaltySplit raises the starting capacity penalty so that, on the
// line instance, any excess costs more than the detour of an extra route;
// at the default of 1.0 one overloaded route (9 customers: 18 + 6 excess)
// undercuts three feasible ones (36) and seeding yields no feasible best.
func highPenaltySplit() individual.SplitOptions {
	opts := individual.DefaultSplitOptions()
	opts.Penalty = 100
	return opts
}

func TestSeedInitial_PopulatesFeasibleOrInfeasible(t *testing.T) {
	p := buildLine(t, 9)
	e, err := genetic.New(p, 42, smallEngineOptions(), smallPopOptions(), ruinrecreate.DefaultOptions(), highPenaltySplit())
	require.NoError(t, err)

	e.SeedInitial()

	pop := e.Population()
	require.Equal(t, smallEngineOptions().InitialPopulationSize, len(pop.Feasible)+len(pop.Infeasible))
	require.NotNil(t, pop.Best)
}

func TestRunGeneration_KeepsBestMonotonicallyImproving(t *testing.T) {
	p := buildLine(t, 9)
	e, err := genetic.New(p, 7, smallEngineOptions(), smallPopOptions(), ruinrecreate.DefaultOptions(), highPenaltySplit())
	require.NoError(t, err)

	e.SeedInitial()
	bestAfterSeed := e.Population().Best.PenalisedCost

	for i := 0; i < 30; i++ {
		e.RunGeneration()
		require.LessOrEqual(t, e.Population().Best.PenalisedCost, bestAfterSeed+1e-6)
		bestAfterSeed = e.Population().Best.PenalisedCost
	}
}

func TestRun_ReturnsFeasibleBestWithinBudget(t *testing.T) {
	p := buildLine(t, 12)
	opts := smallEngineOptions()
	opts.TimeLimit = 500 * time.Millisecond
	opts.MaxNoImprovement = 0

	e, err := genetic.New(p, 11, opts, smallPopOptions(), ruinrecreate.DefaultOptions(), individual.DefaultSplitOptions())
	require.NoError(t, err)

	best := e.Run()
	require.NotNil(t, best)

	seen := make(map[int]bool, p.N())
	for _, r := range best.Routes {
		for _, c := range r.Customers {
			require.False(t, seen[c], "customer %d visited twice", c)
			seen[c] = true
		}
	}
	require.Len(t, seen, p.N())
}

func TestRunGeneration_EveryMemberCoversAllCustomersExactlyOnce(t *testing.T) {
	p := buildLine(t, 9)
	e, err := genetic.New(p, 99, smallEngineOptions(), smallPopOptions(), ruinrecreate.DefaultOptions(), individual.DefaultSplitOptions())
	require.NoError(t, err)

	e.SeedInitial()
	for i := 0; i < 15; i++ {
		e.RunGeneration()
	}

	for _, ind := range e.Population().Union() {
		seen := make(map[int]bool, p.N())
		for _, r := range ind.Routes {
			for _, c := range r.Customers {
				require.False(t, seen[c], "customer %d duplicated", c)
				seen[c] = true
			}
		}
		require.Len(t, seen, p.N())
	}
}
