package problem

import "math"

// Problem is an immutable CVRP instance. Depot is always index 0; customers
// occupy indices 1..N. Build once via Builder; every field is read-only
// afterwards.
type Problem struct {
	n        int     // number of customers (excludes the depot)
	capacity int     // fleet capacity Q
	coords   []Point // len == n+1, index 0 is the depot
	demand   []int   // len == n+1, demand[0] == 0

	round   bool      // RoundDistances
	dense   []float64 // len == (n+1)*(n+1) when precomputed, else nil
	onDemand bool     // true when dense == nil (compute per query)

	neighbors [][]int // len == n+1; neighbors[0] is empty (depot has none)
}

// N returns the number of customers, excluding the depot.
func (p *Problem) N() int { return p.n }

// Capacity returns the fleet capacity Q.
func (p *Problem) Capacity() int { return p.capacity }

// Coord returns the coordinate of node i (0 is the depot).
func (p *Problem) Coord(i int) Point { return p.coords[i] }

// Demand returns the demand of node i (0 is the depot, demand 0).
func (p *Problem) Demand(i int) int { return p.demand[i] }

// Dist returns the distance between nodes i and j, applying rounding if
// Options.RoundDistances was set at Build time. It never panics on i==j.
func (p *Problem) Dist(i, j int) float64 {
	if i == j {
		return 0
	}
	if !p.onDemand {
		return p.dense[i*(p.n+1)+j]
	}
	return p.euclid(i, j)
}

// Neighbors returns the Options.Granularity nearest other customers to i,
// excluding the depot, ordered from nearest to farthest. The returned slice
// must not be mutated by callers.
func (p *Problem) Neighbors(i int) []int { return p.neighbors[i] }

func (p *Problem) euclid(i, j int) float64 {
	a, b := p.coords[i], p.coords[j]
	dx := a.X - b.X
	dy := a.Y - b.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if p.round {
		d = math.Round(d)
	}
	return d
}
