package pathcost

import (
	"container/heap"
	"math"

	"github.com/geodels/biolec/conngraph"
)

// Distances computes shortest-path costs from the grid node source to
// every member of cg. The result is indexed by local node index;
// unreachable members hold math.Inf(1).
//
// Preconditions (validated in order):
//  1. cg must be non-nil (ErrNilGraph).
//  2. source must be a member of cg (ErrSourceNotMember).
//
// Edge costs are non-negative by conngraph.Build's contract, so no
// negative-weight scan is repeated here.
//
// Complexity: O((M + E) log M) time, O(M + E) space.
func Distances(cg *conngraph.Graph, source int) ([]float64, error) {
	if cg == nil {
		return nil, ErrNilGraph
	}
	src, ok := cg.Local(source)
	if !ok {
		return nil, ErrSourceNotMember
	}

	r := newRunner(cg, src)
	r.process()

	return r.dist, nil
}

// Closeness computes the LEC contribution of the grid node source
// within cg: the reciprocal of the mean shortest-path cost to every
// reachable other member. Unreachable members are excluded from the
// mean; a source with no reachable member scores 0.
//
// Complexity: one Distances run plus an O(M) reduction.
func Closeness(cg *conngraph.Graph, source int) (float64, error) {
	dist, err := Distances(cg, source)
	if err != nil {
		return 0, err
	}

	src, _ := cg.Local(source)
	var sum float64
	var reached int
	for v, d := range dist {
		if v == src || math.IsInf(d, 1) {
			continue
		}
		sum += d
		reached++
	}
	if reached == 0 || sum == 0 {
		return 0, nil
	}

	return float64(reached) / sum, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	cg      *conngraph.Graph
	dist    []float64 // local index → best-known distance from source
	visited []bool    // local index → distance finalized
	pq      nodePQ    // min-heap of nodeItem, lazy decrease-key
}

// newRunner initializes distances to +∞, seeds the source at 0, and
// pushes it onto the heap.
func newRunner(cg *conngraph.Graph, src int) *runner {
	n := cg.Order()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	r := &runner{
		cg:      cg,
		dist:    dist,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{local: src, dist: 0})

	return r
}

// process is the core loop: repeatedly extract the minimum-distance
// node, skip stale entries, finalize, and relax outgoing edges.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.local

		// Stale heap entry from the lazy-decrease-key strategy.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		r.cg.Neighbors(u, func(v int, w float64) {
			newDist := r.dist[u] + w
			// Strict improvement only; ties would push useless duplicates.
			if newDist >= r.dist[v] {
				return
			}
			r.dist[v] = newDist
			heap.Push(&r.pq, nodeItem{local: v, dist: newDist})
		})
	}
}

// nodeItem is a heap entry: a local node index with its candidate
// distance from the source.
type nodeItem struct {
	local int
	dist  float64
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Outdated
// entries remain after an improvement and are ignored when popped
// (checked via runner.visited).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
