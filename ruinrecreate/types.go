package ruinrecreate

import "errors"

// ErrNoRoutes indicates Ruin was called on an individual with zero routes
// (nothing to ruin).
var ErrNoRoutes = errors.New("ruinrecreate: individual has no routes")

// Options configures the ruin and recreate steps.
type Options struct {
	// AvgCardinality is C̄, the target average number of customers removed
	// per ruin call; it sets the range from which k_s (the number of
	// routes ruined) is drawn.
	AvgCardinality float64

	// MaxStringLength is L^max, the longest contiguous string removed from
	// a single route in one ruin pass.
	MaxStringLength int

	// Alpha is the geometric-distribution parameter used to size the
	// preserved interior segment in the split-string ruin variant; larger
	// alpha biases toward longer preserved segments.
	Alpha float64

	// Blink is β, the independent per-position skip probability used by
	// greedy-with-blink recreate.
	Blink float64
}

// DefaultOptions returns the parameter set named in the penalty-adaptation
// and ruin scenarios: C̄=10, L^max=10, Alpha=0.01, Blink=0.01.
func DefaultOptions() Options {
	return Options{
		AvgCardinality:  10,
		MaxStringLength: 10,
		Alpha:           0.01,
		Blink:           0.01,
	}
}
