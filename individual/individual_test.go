package individual_test

import (
	"testing"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesTour(t *testing.T) {
	tour := []int{3, 1, 2}
	ind := individual.New(tour)
	require.Equal(t, tour, ind.Tour)

	tour[0] = 99
	require.NotEqual(t, tour[0], ind.Tour[0], "New must copy, not alias, the input slice")
}

func TestClone_Independence(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	require.NoError(t, individual.Split(p, ind, individual.DefaultSplitOptions()))

	clone := ind.Clone()
	require.Equal(t, ind.Tour, clone.Tour)
	require.Equal(t, ind.Distance, clone.Distance)
	require.Equal(t, ind.Routes, clone.Routes)

	clone.Routes[0].Customers[0] = 2
	clone.Tour[0] = 2
	require.NotEqual(t, ind.Tour[0], clone.Tour[0])
	require.NotEqual(t, ind.Routes[0].Customers[0], clone.Routes[0].Customers[0])
}

func TestValidateCoverage_DetectsMissingCustomer(t *testing.T) {
	ind := individual.New([]int{1, 2})
	ind.Routes = []individual.Route{{Customers: []int{1}}}
	require.ErrorIs(t, individual.ValidateCoverage(ind, 2), individual.ErrBrokenChain)
}

func TestValidateCoverage_DetectsDuplicate(t *testing.T) {
	ind := individual.New([]int{1, 2})
	ind.Routes = []individual.Route{{Customers: []int{1, 1}}}
	require.ErrorIs(t, individual.ValidateCoverage(ind, 2), individual.ErrBrokenChain)
}

func TestValidateCoverage_PassesForConsistentPartition(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	require.NoError(t, individual.Split(p, ind, individual.DefaultSplitOptions()))
	require.NoError(t, individual.ValidateCoverage(ind, 2))
}

func TestValidateChain_DetectsBrokenLink(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	require.NoError(t, individual.Split(p, ind, individual.DefaultSplitOptions()))

	ind.Pred[2] = 99 // corrupt the chain
	require.ErrorIs(t, individual.ValidateChain(ind), individual.ErrBrokenChain)
}

func TestValidateAggregates_DetectsStaleCache(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	opts := individual.DefaultSplitOptions()
	require.NoError(t, individual.Split(p, ind, opts))

	ind.Distance += 1000 // corrupt the cached aggregate
	require.ErrorIs(t, individual.ValidateAggregates(ind, opts.Penalty, 1e-9), individual.ErrAggregateMismatch)
}

func TestValidateAggregates_PassesAfterSplit(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	opts := individual.DefaultSplitOptions()
	require.NoError(t, individual.Split(p, ind, opts))
	require.NoError(t, individual.ValidateAggregates(ind, opts.Penalty, 1e-9))
}

func TestRebuildLinks_MatchesSplitOutput(t *testing.T) {
	p := buildTrivial2(t)
	ind := individual.New([]int{1, 2})
	require.NoError(t, individual.Split(p, ind, individual.DefaultSplitOptions()))

	// Manually reorder a route in place (as a localsearch move would) and
	// confirm RebuildLinks restores a consistent view without a full Split.
	ind.Routes[0].Customers = []int{2, 1}
	individual.RebuildLinks(ind)
	require.NoError(t, individual.ValidateChain(ind))
	require.Equal(t, 0, ind.RouteOf[1])
	require.Equal(t, 0, ind.RouteOf[2])
}
