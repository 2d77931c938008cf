package ruinrecreate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
	"github.com/katalvlaran/hgsrr/ruinrecreate"
	"github.com/stretchr/testify/require"
)

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

func splitInd(t *testing.T, p *problem.Problem, tour []int) *individual.Individual {
	t.Helper()
	ind := individual.New(tour)
	require.NoError(t, individual.Split(p, ind, individual.DefaultSplitOptions()))
	return ind
}

func TestRuin_RemovesAndCompacts(t *testing.T) {
	p := buildLine(t, 9)
	ind := splitInd(t, p, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	rng := rand.New(rand.NewSource(3))
	removed := ruinrecreate.Ruin(p, ind, ruinrecreate.DefaultOptions(), rng)

	require.NotEmpty(t, removed)
	// Every remaining route must be non-empty and every removed customer
	// absent from ind.Routes.
	remaining := map[int]bool{}
	for _, r := range ind.Routes {
		require.NotEmpty(t, r.Customers)
		for _, c := range r.Customers {
			remaining[c] = true
		}
	}
	for _, c := range removed {
		require.False(t, remaining[c], "removed customer %d must not remain in any route", c)
	}
}

func TestRecreate_ReinsertsEveryRemovedCustomer(t *testing.T) {
	p := buildLine(t, 9)
	ind := splitInd(t, p, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	rng := rand.New(rand.NewSource(3))
	opts := ruinrecreate.DefaultOptions()
	removed := ruinrecreate.Ruin(p, ind, opts, rng)
	require.NotEmpty(t, removed)

	ruinrecreate.Recreate(p, ind, removed, opts, individual.DefaultSplitOptions().Penalty, rng)
	individual.SyncTourFromRoutes(ind)

	present := map[int]bool{}
	for _, r := range ind.Routes {
		for _, c := range r.Customers {
			present[c] = true
		}
	}
	for i := 1; i <= 9; i++ {
		require.True(t, present[i], "customer %d missing after recreate", i)
	}
}

func TestOneIteration_PreservesCoverageAndAggregates(t *testing.T) {
	p := buildLine(t, 9)
	ind := splitInd(t, p, []int{1, 2, 3, 4, 5, 6, 7, 8, 9})

	rng := rand.New(rand.NewSource(11))
	splitOpts := individual.DefaultSplitOptions()
	candidate := ruinrecreate.OneIteration(p, ind, ruinrecreate.DefaultOptions(), splitOpts, rng)

	require.NoError(t, individual.ValidateCoverage(candidate, 9))
	require.NoError(t, individual.ValidateChain(candidate))
	require.NoError(t, individual.ValidateAggregates(candidate, splitOpts.Penalty, 1e-6))
	// OneIteration must not mutate its input.
	require.NoError(t, individual.ValidateCoverage(ind, 9))
}

func TestAccept_AlwaysAcceptsImprovement(t *testing.T) {
	p := buildLine(t, 4)
	cur := splitInd(t, p, []int{1, 2, 3, 4})
	better := cur.Clone()
	better.PenalisedCost = cur.PenalisedCost - 1

	rng := rand.New(rand.NewSource(1))
	require.True(t, ruinrecreate.Accept(cur, better, 1.0, rng))
}

func TestSchedule_CoolsGeometrically(t *testing.T) {
	s := ruinrecreate.NewSchedule(100, 1, 5)
	require.Equal(t, 100.0, s.Temp(0))
	require.InDelta(t, 1.0, s.Temp(4), 1e-9)
	require.Greater(t, s.Temp(1), s.Temp(2))
	require.Greater(t, s.Temp(2), s.Temp(3))
}

func TestRunAnnealed_TracksImprovement(t *testing.T) {
	p := buildLine(t, 9)
	ind := splitInd(t, p, []int{9, 1, 8, 2, 7, 3, 6, 4, 5}) // deliberately scrambled

	rng := rand.New(rand.NewSource(42))
	splitOpts := individual.DefaultSplitOptions()
	schedule := ruinrecreate.NewSchedule(50, 0.5, 20)
	result, _ := ruinrecreate.RunAnnealed(p, ind, ruinrecreate.DefaultOptions(), splitOpts, schedule, rng)

	require.NoError(t, individual.ValidateCoverage(result, 9))
	require.NoError(t, individual.ValidateChain(result))
	require.NoError(t, individual.ValidateAggregates(result, splitOpts.Penalty, 1e-6))
}
