// Package localsearch implements the two-phase education procedure that
// improves a Split individual in place: Phase A (Granular RI, a bundle of
// relocate/swap/two-opt moves pruned by each customer's granular neighbour
// list) and Phase B (SWAP*, a paired-relocation move pruned by polar-sector
// overlap between routes). Both phases are penalty-aware: they accept any
// move that strictly decreases penalised cost, feasible or not.
//
// # Move dispatch
//
// Phase A's move bundle is dispatched through the tagged moveKind enum
// rather than open-ended polymorphism, mirroring how the teacher dispatches
// bound/matching algorithm choices through a small closed enum.
//
// # Mutation discipline
//
// Every move builds a full replacement customer slice for each route it
// touches, evaluates the penalised-cost delta from scratch for just those
// routes (O(route length), never O(N)), and only mutates Individual state
// — Routes, Succ/Pred/RouteOf via individual.RelinkRoute, and the cached
// aggregates — once the delta is confirmed strictly improving. Run rebuilds
// Tour from Routes on return, since Tour goes stale the moment a route's
// Customers slice changes.
package localsearch
