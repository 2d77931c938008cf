// Package genetic drives the generational loop: binary-tournament parent
// selection over the population's biased fitness, order crossover (OX) on
// the giant tour, Split + local search education, an optional
// ruin-and-recreate mutation accepted by simulated annealing, insertion,
// periodic penalty management, elite-education scheduling, and
// stagnation-triggered restarts.
//
// # Parent selection and crossover
//
// Binary tournament is grounded on cbarrick-evo's sel.BinaryTournament,
// adapted to compare Individual.BiasedFitness (lower is better here, the
// inverse sense of the teacher's Fitness()) instead of a single scalar
// fitness. OX crossover is grounded on cbarrick-evo's perm.OrderX,
// generalized from a flat permutation to the giant-tour representation.
//
// # Annealing schedules
//
// Engine owns two ruinrecreate.Schedule instances: a short generational one
// (K = ceil(gamma*N)) stepped once per R&R mutation in ordinary education,
// seeding included, wrapping back to its first step after K steps, and a
// long elite one (K = ceil(gammaE*N))
// run to completion each time elite education fires.
package genetic
