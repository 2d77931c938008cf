package localsearch

import (
	"math/rand"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// Run alternates Phase A (Granular RI) and Phase B (SWAP*) against ind
// until neither phase finds a strictly-improving move, then resynchronises
// Tour from the (possibly rearranged) Routes. ind must already have been
// Split before calling Run. Returns true iff any move was applied.
func Run(p *problem.Problem, ind *individual.Individual, penalty float64, rng *rand.Rand) bool {
	improvedAny := false

	for {
		a := runGranularRI(p, ind, penalty, rng)
		b := runSwapStar(p, ind, penalty)
		if !a && !b {
			break
		}
		improvedAny = true
	}

	if improvedAny {
		individual.SyncTourFromRoutes(ind)
	}

	return improvedAny
}
