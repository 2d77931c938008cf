// Package individual implements the HGSRR genome: a giant-tour permutation
// of customers, its Split decoder into capacity-penalised routes, and the
// doubly-linked route view (succ/pred/routeOf) that localsearch mutates.
//
// # Representation
//
// An Individual owns:
//   - Tour: a permutation of 1..N (no depot).
//   - Routes: the route partition produced by the last Split call.
//   - Succ/Pred: customer-indexed arrays; succ[c]==0 (the depot sentinel)
//     marks the last customer of its route, pred[c]==0 marks the first.
//   - RouteOf: customer -> index into Routes.
//   - Cost vectors: Distance, CapacityExcess, PenalisedCost.
//
// Per the cyclic-reference Design Note in SPEC_FULL.md, there are no
// back-pointers: Succ/Pred/RouteOf are plain arrays owned directly by the
// Individual, not a graph of pointers.
//
// # Split
//
// Split partitions the giant tour into the set of routes of minimum
// penalised cost under the current penalty P, by finding a shortest path
// 0 -> N over an implicit DAG whose edge (i, j) represents a route
// containing tour positions i+1..j. It must be re-run after crossover and
// after every ruin-and-recreate mutation (both change the giant tour's
// customer order, which route boundaries must be re-derived from).
package individual
