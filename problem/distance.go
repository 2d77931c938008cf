package problem

import "math"

// precomputeDense fills p.dense with the full (n+1) x (n+1) Euclidean
// distance table, applying rounding once per arc when p.round is set. This
// is the "dense, row-major, no interface indirection" layout the teacher's
// matrix.Dense and tsp.TourCost hot paths use, sized for the common case
// where N is small enough that O(N^2) memory is cheap and every Dist(i,j)
// call afterwards is a single slice read.
//
// Complexity: O(N^2) time and space.
func precomputeDense(p *Problem) {
	size := p.n + 1
	dense := make([]float64, size*size)

	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			d := euclidRaw(p.coords[i], p.coords[j])
			if p.round {
				d = math.Round(d)
			}
			dense[i*size+j] = d
			dense[j*size+i] = d
		}
	}

	p.dense = dense
	p.onDemand = false
}

// euclidRaw computes the unrounded Euclidean distance between two points.
func euclidRaw(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
