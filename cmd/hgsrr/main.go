// Command hgsrr solves a CVRP instance with the hybrid genetic search +
// ruin-and-recreate engine and prints the best feasible solution found to
// standard output.
//
// Usage:
//
//	hgsrr <instance-file> [-t seconds] [-r] [--seed N] [--deterministic]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/hgsrr/config"
	"github.com/katalvlaran/hgsrr/genetic"
	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/instance"
	"github.com/katalvlaran/hgsrr/problem"
	"github.com/katalvlaran/hgsrr/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the CLI and returns a process exit code: 0 on any
// completed run (time-limit expiry is the normal terminator, not an
// error), non-zero on a configuration or instance error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hgsrr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := config.Default()
	cfg.ApplyFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "usage: hgsrr <instance-file> [-t seconds] [-r] [--seed N] [--deterministic]")
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 2
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "instance error:", err)
		return 1
	}
	defer f.Close()

	p, err := instance.Load(f, problem.WithOptions(cfg.ProblemOptions()))
	if err != nil {
		fmt.Fprintln(stderr, "instance error:", err)
		return 1
	}

	report.InstanceSummary(stdout, p)

	seed := cfg.Seed
	if !cfg.Deterministic {
		seed = time.Now().UnixNano()
	}

	eng, err := genetic.New(p, seed, cfg.GeneticOptions(p.N()), cfg.PopulationOptions(), cfg.RuinRecreateOptions(), cfg.SplitOptions())
	if err != nil {
		fmt.Fprintln(stderr, "engine error:", err)
		return 1
	}
	eng.OnImprovement(func(generation int, best *individual.Individual) {
		report.LiveStatus(stdout, generation, best)
	})

	best := eng.Run()
	report.Final(stdout, best)
	return 0
}
