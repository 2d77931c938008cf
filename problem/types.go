package problem

import "errors"

// Sentinel errors. These are instance errors per SPEC_FULL.md §7: reported at
// load time, never wrapped with fmt.Errorf where a sentinel suffices.
var (
	// ErrNoDepot indicates the builder never received a depot node (id 0).
	ErrNoDepot = errors.New("problem: no depot node (id 0) was added")

	// ErrNoCustomers indicates no customer nodes (id != 0) were added. A
	// single customer is a valid, if trivial, instance (one route
	// depot->customer->depot); only zero customers leaves nothing to solve.
	ErrNoCustomers = errors.New("problem: no customer nodes")

	// ErrCapacityNotSet indicates Build was called before SetCapacity.
	ErrCapacityNotSet = errors.New("problem: capacity was never set")

	// ErrNonPositiveCapacity indicates a non-positive capacity was supplied.
	ErrNonPositiveCapacity = errors.New("problem: capacity must be > 0")

	// ErrDuplicateNode indicates AddNode was called twice with the same id.
	ErrDuplicateNode = errors.New("problem: duplicate node id")

	// ErrDemandExceedsCapacity indicates some customer's demand alone
	// exceeds the fleet capacity, making the instance infeasible by
	// construction.
	ErrDemandExceedsCapacity = errors.New("problem: demand exceeds capacity")

	// ErrNegativeDemand indicates a customer was added with demand < 0.
	ErrNegativeDemand = errors.New("problem: negative demand")

	// ErrIndexOutOfRange indicates a customer index outside [0, N] was
	// requested from a built Problem.
	ErrIndexOutOfRange = errors.New("problem: index out of range")

	// ErrInvalidGranularity indicates Options.Granularity <= 0.
	ErrInvalidGranularity = errors.New("problem: granularity must be > 0")
)

// Options configures how a Problem is derived from the nodes a Builder
// collects. Zero value is not meaningful; use DefaultOptions and override.
type Options struct {
	// PrecomputeDistanceSizeLimit is the largest N for which the full N x N
	// distance table is precomputed and cached (O(N^2) memory). Above this
	// limit distances are computed per query from the stored coordinates.
	PrecomputeDistanceSizeLimit int

	// RoundDistances, if true, rounds every arc distance to the nearest
	// integer whenever it is computed: once per arc for the dense table, on
	// each query in on-demand mode (which yields the same value every time).
	RoundDistances bool

	// Granularity is the size Gamma of each customer's granular neighbour
	// list, used by localsearch and ruinrecreate to prune candidate moves.
	Granularity int
}

// DefaultOptions returns Options with the defaults used throughout
// SPEC_FULL.md's worked examples: precompute up to 1000 customers, do not
// round distances, and a granularity of 10 nearest neighbours.
func DefaultOptions() Options {
	return Options{
		PrecomputeDistanceSizeLimit: 1000,
		RoundDistances:              false,
		Granularity:                 10,
	}
}

// Point is a 2D Euclidean coordinate.
type Point struct {
	X, Y float64
}
