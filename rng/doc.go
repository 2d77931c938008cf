// Package rng centralizes deterministic random generation for every
// randomized operator in the HGSRR engine (parent selection, OX cut points,
// ruin seed choice, blink coin flips, simulated-annealing acceptance draws).
//
// Goals:
//   - Determinism: same root seed => identical sequence of draws across runs,
//     independent of machine, OS, or goroutine scheduling (there is none; the
//     engine is single-threaded, see Design Note in SPEC_FULL.md §5).
//   - Encapsulation: a single RNG factory; no time-based source is ever used
//     unless the caller explicitly asks for a non-deterministic root seed.
//   - Substream isolation: distinct concerns (e.g. "parent selection" vs
//     "OX cut points") draw from distinct derived streams, so adding or
//     removing a draw in one concern never perturbs another's sequence.
//
// This package is a direct generalization of the deterministic-RNG idiom
// used throughout the teacher's TSP solvers: a SplitMix64 avalanche mix
// derives independent child streams from a single root seed.
package rng
