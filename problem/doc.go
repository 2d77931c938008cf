// Package problem models an immutable Capacitated Vehicle Routing Problem
// instance: the depot, the customers with their coordinates and demands, the
// fleet capacity, the pairwise distance table, and each customer's granular
// neighbour list.
//
// # What & Why
//
// A Problem is built once via Builder and never mutated afterwards; every
// other package in this module (individual, localsearch, ruinrecreate,
// population, genetic) treats it as read-only shared state, owned for the
// lifetime of the engine.
//
// # Distances
//
// When N is small enough (N <= Options.PrecomputeDistanceSizeLimit) the full
// N x N distance table is precomputed into a flat row-major []float64 buffer
// (the same "dense, cache-friendly, no interface indirection" layout the
// teacher's matrix.Dense and tsp.TourCost hot paths use). Above that limit,
// distances are computed on demand from the stored coordinates. Either way,
// Dist(i, j) is the single entry point callers use; they never need to know
// which mode is active.
//
// Optionally (Options.RoundDistances), every arc distance is rounded to the
// nearest integer inside this package: once when the dense table is built,
// or on every query in on-demand mode, which yields the same value - per
// Design Note in SPEC_FULL.md, Split, local search, ruin-and-recreate, and
// population ordering must all agree on one numeric representation, so
// rounding happens only in this package, never downstream.
//
// # Neighbour lists
//
// Neighbors(i) returns the Options.Granularity nearest other customers to i
// by distance (the depot is excluded), computed with a bounded max-heap of
// size Gamma per customer so the cost is O(N log Gamma) per customer instead
// of a full O(N log N) sort.
package problem
