package genetic

import (
	"math/rand"

	"github.com/katalvlaran/hgsrr/individual"
)

// binaryTournament draws two distinct random candidates and returns the one
// with the better (lower) BiasedFitness, per spec.md §4.6 step 1. Grounded
// on cbarrick-evo's sel.BinaryTournament with the comparison direction
// inverted to match this population's "lower is better" fitness sense.
func binaryTournament(candidates []*individual.Individual, rng *rand.Rand) *individual.Individual {
	n := len(candidates)
	x := rng.Intn(n)
	y := x
	for y == x && n > 1 {
		y = rng.Intn(n)
	}
	if candidates[x].BiasedFitness <= candidates[y].BiasedFitness {
		return candidates[x]
	}
	return candidates[y]
}
