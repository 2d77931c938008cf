// Package config collects every tunable of a solver run — timing,
// population sizing, and ruin-and-recreate/annealing parameters — into one
// structure, the way tsp.Options collects every TSP solver knob into one
// struct with a DefaultOptions() constructor.
//
// Config is the boundary artifact: the CLI populates it, then the
// ProblemOptions, SplitOptions, PopulationOptions, RuinRecreateOptions and
// GeneticOptions methods translate it into the per-package Options structs
// (problem.Options, individual.SplitOptions, population.Options,
// ruinrecreate.Options, genetic.Options) that the solving packages actually
// consume. No solving package imports config, keeping the dependency
// direction one-way from the collaborator inward.
package config
