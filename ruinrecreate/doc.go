// Package ruinrecreate implements the string-removal ruin step, the
// greedy-with-blink recreate step, and the simulated-annealing acceptance
// rule that wraps one or many ruin+recreate iterations.
//
// # Flow
//
// Ruin and Recreate both operate directly on Individual.Routes (the
// per-route customer slices), the same representation local search
// mutates. They deliberately do not keep every cached aggregate exactly
// consistent mid-flight — OneIteration always finishes by resynchronising
// Tour from Routes and re-running individual.Split, which both re-derives
// the cost-minimal route boundaries for the new customer order and
// recomputes every aggregate from scratch in one pass.
//
// # Determinism
//
// Every draw — seed customer selection, string length, split-string
// geometric sampling, insertion-order tie-breaks, blink coin flips, and SA
// acceptance — reads from the single *rand.Rand a caller passes in. Callers
// derive that RNG from a named rng.Stream* substream so reordering one R&R
// call's draws never perturbs another concern's sequence.
package ruinrecreate
