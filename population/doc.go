// Package population manages the feasible and infeasible subpopulations:
// insertion and global-best tracking, broken-pairs diversity, biased
// fitness ranking, survivor selection down to mu, and the adaptive
// capacity-violation penalty controller.
//
// # Subpopulations
//
// Pop holds two independent sets of *individual.Individual — Feasible and
// Infeasible — each bounded at mu+lambda before survivor selection trims it
// back to mu. An individual routes to Feasible iff its CapacityExcess is
// zero at insertion time; a feasible individual that strictly beats the
// persistent global best replaces it (a clone, never a shared pointer, so
// later mutation of the population's copy never corrupts the recorded
// best).
//
// # Diversity
//
// Broken-pairs distance between two individuals is the number of customers
// whose successor differs between the two, normalised by N.
// Diversity is stored per individual and recomputed eagerly: every insert
// recomputes it for the whole set it touched, and survivor selection
// recomputes it before each removal. Nothing is deferred to read time.
package population
