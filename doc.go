// Package hgsrr is the module root for a Hybrid Genetic Search with
// Ruin-and-Recreate (HGSRR) solver for the Capacitated Vehicle Routing
// Problem (CVRP).
//
// The engine itself has no package of its own; it is the composition of:
//
//	problem       immutable instance: coordinates, demands, capacity, distances
//	individual    giant-tour genome + Split decoder + linked-list route view
//	localsearch   granular RI and SWAP* neighbourhoods (education)
//	ruinrecreate  string-removal ruin, greedy-with-blink recreate, SA acceptance
//	population    feasible/infeasible subpopulations, diversity, penalty control
//	genetic       parent selection, OX crossover, survivor management, restarts
//	rng           deterministic substream derivation shared by every randomized op
//
// External collaborators consumed only through interfaces (config file
// loading, instance parsing, logging, result serialisation, decomposition,
// and the WebAssembly front-end) live in:
//
//	config        Config struct + CLI flag overrides
//	instance      DIMACS/TSPLIB-style instance file reader
//	report        stdout result emission
//	cmd/hgsrr     the CLI entry point
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// specification and the grounding ledger tying each package back to its
// reference implementation.
package hgsrr
