package report

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/hgsrr/individual"
	"github.com/katalvlaran/hgsrr/problem"
)

// InstanceSummary prints N, capacity, average/max demand, and the
// customer bounding box once, right after an instance is loaded.
func InstanceSummary(w io.Writer, p *problem.Problem) {
	n := p.N()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	totalDemand, maxDemand := 0, 0

	for i := 1; i <= n; i++ {
		c := p.Coord(i)
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)

		d := p.Demand(i)
		totalDemand += d
		if d > maxDemand {
			maxDemand = d
		}
	}

	avgDemand := 0.0
	if n > 0 {
		avgDemand = float64(totalDemand) / float64(n)
	}

	fmt.Fprintf(w, "instance: N=%d capacity=%d avg_demand=%.2f max_demand=%d bbox=[(%.2f,%.2f)-(%.2f,%.2f)]\n",
		n, p.Capacity(), avgDemand, maxDemand, minX, minY, maxX, maxY)
}

// LiveStatus prints a single self-overwriting status line, refreshed via
// the "\x1b[2K\r" clear-and-return idiom, each time the global best
// improves. Callers are expected to follow the last call with a newline
// (Final does this) once the run terminates.
func LiveStatus(w io.Writer, generation int, best *individual.Individual) {
	fmt.Fprintf(w, "\x1b[2K\rgen %7d | best %10.2f | feasible %v | routes %d",
		generation, best.PenalisedCost, best.Feasible, len(best.Routes))
}

// Final prints the best feasible solution found: one line per route
// (depot -> customers -> depot) followed by the total distance, per
// spec.md §6's output contract.
func Final(w io.Writer, best *individual.Individual) {
	fmt.Fprintln(w)
	for i, r := range best.Routes {
		fmt.Fprintf(w, "route %d: 0", i+1)
		for _, c := range r.Customers {
			fmt.Fprintf(w, " %d", c)
		}
		fmt.Fprintln(w, " 0")
	}
	fmt.Fprintf(w, "distance %.2f\n", best.Distance)
}
