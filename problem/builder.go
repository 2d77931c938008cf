package problem

// Builder accumulates nodes and a capacity, then produces an immutable
// Problem via Build. This mirrors spec.md §6's external-interface contract
// (add_node, add_capacity, then load_problem) and is shaped after the
// teacher's core.Graph constructor/option pattern (NewGraph(opts...),
// g.AddVertex(id), g.AddEdge(u, v, w)) — adapted from a concurrent,
// mutable-after-construction graph to a single-threaded, build-once
// accumulator, since a Problem never changes shape once solving starts.
type Builder struct {
	opts Options

	haveDepot bool
	ids       map[int]struct{}
	coords    []Point
	demand    []int

	capacity    int
	haveCapacity bool
}

// BuilderOption configures a Builder at construction time.
type BuilderOption func(*Builder)

// WithOptions overrides the default Options (precompute limit, rounding,
// granularity) used by the resulting Problem.
func WithOptions(o Options) BuilderOption {
	return func(b *Builder) { b.opts = o }
}

// NewBuilder returns a Builder with DefaultOptions, optionally overridden.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		opts: DefaultOptions(),
		ids:  make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddNode registers a node (the depot when id==0, a customer otherwise)
// with its demand and coordinates. Returns ErrDuplicateNode if id was
// already added, ErrNegativeDemand if demand < 0.
func (b *Builder) AddNode(id int, demand int, x, y float64) error {
	if _, dup := b.ids[id]; dup {
		return ErrDuplicateNode
	}
	if demand < 0 {
		return ErrNegativeDemand
	}

	b.ids[id] = struct{}{}
	if id == 0 {
		b.haveDepot = true
	}

	idx := id
	if idx >= len(b.coords) {
		grown := make([]Point, idx+1)
		copy(grown, b.coords)
		b.coords = grown
		grownD := make([]int, idx+1)
		copy(grownD, b.demand)
		b.demand = grownD
	}
	b.coords[idx] = Point{X: x, Y: y}
	b.demand[idx] = demand

	return nil
}

// SetCapacity records the fleet capacity Q. Returns ErrNonPositiveCapacity
// if q <= 0.
func (b *Builder) SetCapacity(q int) error {
	if q <= 0 {
		return ErrNonPositiveCapacity
	}
	b.capacity = q
	b.haveCapacity = true
	return nil
}

// Build validates the accumulated nodes and capacity and produces an
// immutable Problem, precomputing the distance table (when small enough)
// and every customer's granular neighbour list.
//
// Validation order mirrors spec.md §7's instance-error list: missing depot,
// no customers, then per-customer demand-vs-capacity. A single customer is
// accepted: spec.md §8's round-trip/boundary scenario requires N=1 to
// produce the trivial route [0,1,0], and Split already decodes it correctly
// with no special-casing needed.
func (b *Builder) Build() (*Problem, error) {
	if !b.haveDepot {
		return nil, ErrNoDepot
	}
	if !b.haveCapacity {
		return nil, ErrCapacityNotSet
	}

	n := len(b.coords) - 1 // customers occupy 1..n
	if n < 1 {
		return nil, ErrNoCustomers
	}
	if b.opts.Granularity <= 0 {
		return nil, ErrInvalidGranularity
	}

	for i := 1; i <= n; i++ {
		if b.demand[i] > b.capacity {
			return nil, ErrDemandExceedsCapacity
		}
	}

	p := &Problem{
		n:        n,
		capacity: b.capacity,
		coords:   b.coords,
		demand:   b.demand,
		round:    b.opts.RoundDistances,
	}

	if n <= b.opts.PrecomputeDistanceSizeLimit {
		precomputeDense(p)
	} else {
		p.onDemand = true
	}

	buildNeighbors(p, b.opts.Granularity)

	return p, nil
}
