package problem

import "container/heap"

// buildNeighbors computes each customer's granular neighbour list: the
// gamma nearest other customers by Dist, excluding the depot. Grounded on
// the teacher's dijkstra package, which maintains a bounded-size frontier
// via container/heap rather than sorting the whole candidate set; here the
// same idea bounds a per-customer max-heap to size gamma, giving
// O(N log gamma) per customer instead of an O(N log N) full sort.
//
// Complexity: O(N^2 log gamma) time, O(N*gamma) space.
func buildNeighbors(p *Problem, gamma int) {
	size := p.n + 1
	lists := make([][]int, size)

	for i := 1; i <= p.n; i++ {
		h := &farthestFirstHeap{}
		heap.Init(h)

		for j := 1; j <= p.n; j++ {
			if i == j {
				continue
			}
			d := p.Dist(i, j)
			if h.Len() < gamma {
				heap.Push(h, neighborCand{idx: j, dist: d})
				continue
			}
			if h.Len() > 0 && d < (*h)[0].dist {
				heap.Pop(h)
				heap.Push(h, neighborCand{idx: j, dist: d})
			}
		}

		cands := make([]neighborCand, h.Len())
		copy(cands, *h)
		sortNeighborsAscending(cands)

		ids := make([]int, len(cands))
		for k, c := range cands {
			ids[k] = c.idx
		}
		lists[i] = ids
	}

	p.neighbors = lists
}

// neighborCand is a candidate neighbour with its distance to the customer
// whose list is being built.
type neighborCand struct {
	idx  int
	dist float64
}

// farthestFirstHeap is a max-heap over neighborCand.dist, so popping removes
// the current farthest candidate - the standard "bounded top-k via a
// capped max-heap" idiom.
type farthestFirstHeap []neighborCand

func (h farthestFirstHeap) Len() int            { return len(h) }
func (h farthestFirstHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h farthestFirstHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *farthestFirstHeap) Push(x interface{}) { *h = append(*h, x.(neighborCand)) }
func (h *farthestFirstHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// sortNeighborsAscending sorts candidates by ascending distance using a
// simple insertion sort; gamma is small (tens, not thousands) in practice,
// so this is faster in wall-clock terms than paying for sort.Slice's
// reflection-driven comparator on such short slices.
func sortNeighborsAscending(c []neighborCand) {
	for i := 1; i < len(c); i++ {
		v := c[i]
		j := i - 1
		for j >= 0 && c[j].dist > v.dist {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = v
	}
}
