package population_test

import (
	"testing"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/population"
	"github.com/stretchr/testify/require"
)

func feasibleInd(tour []int, cost float64) *individual.Individual {
	ind := individual.New(tour)
	ind.Routes = []individual.Route{{Customers: tour}}
	ind.PenalisedCost = cost
	ind.Distance = cost
	ind.CapacityExcess = 0
	ind.Feasible = true
	individual.RebuildLinks(ind)
	return ind
}

func infeasibleInd(tour []int, cost float64, excess int) *individual.Individual {
	ind := feasibleInd(tour, cost)
	ind.CapacityExcess = excess
	ind.Feasible = false
	return ind
}

func TestInsert_RoutesByFeasibility(t *testing.T) {
	pop := population.New(population.DefaultOptions(), 3, 1.0)
	pop.Insert(feasibleInd([]int{1, 2, 3}, 10))
	pop.Insert(infeasibleInd([]int{1, 2, 3}, 8, 2))

	require.Len(t, pop.Feasible, 1)
	require.Len(t, pop.Infeasible, 1)
}

func TestInsert_TracksGlobalBest(t *testing.T) {
	pop := population.New(population.DefaultOptions(), 3, 1.0)
	pop.Insert(feasibleInd([]int{1, 2, 3}, 10))
	require.Equal(t, 10.0, pop.Best.PenalisedCost)

	pop.Insert(feasibleInd([]int{2, 1, 3}, 5))
	require.Equal(t, 5.0, pop.Best.PenalisedCost)

	pop.Insert(feasibleInd([]int{3, 1, 2}, 7))
	require.Equal(t, 5.0, pop.Best.PenalisedCost, "best must not regress on a worse insert")
}

func TestRankBiasedFitness_BestCostGetsLowestRank(t *testing.T) {
	pop := population.New(population.DefaultOptions(), 3, 1.0)
	a := feasibleInd([]int{1, 2, 3}, 5)
	b := feasibleInd([]int{2, 1, 3}, 50)
	pop.Insert(a)
	pop.Insert(b)

	require.Less(t, a.BiasedFitness, b.BiasedFitness)
}

func TestTrimToMu_BoundsSize(t *testing.T) {
	opts := population.DefaultOptions()
	opts.Mu = 2
	opts.Lambda = 1
	pop := population.New(opts, 3, 1.0)

	for i := 0; i < 6; i++ {
		pop.Insert(feasibleInd([]int{1, 2, 3}, float64(i)))
	}
	pop.TrimToMu()

	require.Len(t, pop.Feasible, opts.Mu)
	require.Equal(t, 0.0, pop.Feasible[0].PenalisedCost, "survivor selection must keep the best, not drop it")
}

func TestRestart_ClearsPopulationKeepsBest(t *testing.T) {
	pop := population.New(population.DefaultOptions(), 3, 1.0)
	pop.Insert(feasibleInd([]int{1, 2, 3}, 10))
	require.NotNil(t, pop.Best)

	pop.Restart()
	require.Empty(t, pop.Feasible)
	require.Empty(t, pop.Infeasible)
	require.NotNil(t, pop.Best)
}

func TestManagePenalty_IncreasesWhenFeasibleFractionLow(t *testing.T) {
	opts := population.DefaultOptions()
	opts.ManageEvery = 4
	opts.TargetFeasibleFraction = 0.5
	opts.FeasibleTolerance = 0.05
	pop := population.New(opts, 3, 1.0)

	for i := 0; i < 4; i++ {
		pop.Insert(infeasibleInd([]int{1, 2, 3}, 10, 1))
	}
	pop.ManagePenalty()

	require.Greater(t, pop.Penalty(), 1.0)
}

func TestManagePenalty_DecreasesWhenFeasibleFractionHigh(t *testing.T) {
	opts := population.DefaultOptions()
	opts.ManageEvery = 4
	opts.TargetFeasibleFraction = 0.2
	opts.FeasibleTolerance = 0.05
	pop := population.New(opts, 3, 2.0)

	for i := 0; i < 4; i++ {
		pop.Insert(feasibleInd([]int{1, 2, 3}, 10))
	}
	pop.ManagePenalty()

	require.Less(t, pop.Penalty(), 2.0)
}

func TestUnion_ConcatenatesBothSets(t *testing.T) {
	pop := population.New(population.DefaultOptions(), 3, 1.0)
	pop.Insert(feasibleInd([]int{1, 2, 3}, 10))
	pop.Insert(infeasibleInd([]int{1, 2, 3}, 8, 1))

	require.Len(t, pop.Union(), 2)
}
