// Package conngraph defines the graph types, cost policy, and sentinel
// errors for niche-induced connectivity graphs.
package conngraph

import (
	"errors"
	"math"
)

// Sentinel errors for connectivity-graph construction.
var (
	// ErrNilGrid indicates a nil grid was passed to Build.
	ErrNilGrid = errors.New("conngraph: grid is nil")

	// ErrEmptyNiche indicates a niche band containing zero nodes; the
	// caller must report it rather than silently produce NaN scores.
	ErrEmptyNiche = errors.New("conngraph: niche contains no nodes")

	// ErrNegativeCost indicates the cost function produced a negative
	// edge weight, which shortest-path search cannot accept.
	ErrNegativeCost = errors.New("conngraph: cost function produced a negative weight")
)

// CostFunc computes the cost of traversing one grid edge.
//
//	step — geometric step length of the move (dx axial, √2·dx diagonal)
//	dz   — signed elevation difference destination − source
//	dx   — the grid cell spacing, for normalizing the elevation term
//
// Implementations must be non-negative and SHOULD be monotone in |dz|
// so that steeper transitions cost more. They must depend on elevation
// only through dz, keeping LEC invariant under global elevation shifts.
type CostFunc func(step, dz, dx float64) float64

// DefaultCost scales the geometric step by an elevation-difference
// penalty: step · (1 + |dz|/dx). On flat terrain it reduces to the pure
// step length, making a uniform grid an ordinary unit-distance graph.
func DefaultCost(step, dz, dx float64) float64 {
	return step * (1 + math.Abs(dz)/dx)
}

// Graph is the induced subgraph of a niche: member grid nodes addressed
// by dense local indices with CSR adjacency. Immutable once built.
type Graph struct {
	nodes  []int       // local index → grid node index, ascending
	local  map[int]int // grid node index → local index
	rowPtr []int       // CSR row pointers, length Order()+1
	nbrs   []int32     // CSR column indices (local)
	costs  []float64   // CSR edge costs, parallel to nbrs
}

// Order returns the number of member nodes.
func (cg *Graph) Order() int { return len(cg.nodes) }

// Node maps a local index back to its grid node index.
func (cg *Graph) Node(local int) int { return cg.nodes[local] }

// Nodes returns the member grid node indices in ascending order. The
// returned slice is shared; callers must not mutate it.
func (cg *Graph) Nodes() []int { return cg.nodes }

// Local maps a grid node index to its local index; ok is false when the
// node is not a member of this niche.
func (cg *Graph) Local(gridIdx int) (local int, ok bool) {
	local, ok = cg.local[gridIdx]

	return local, ok
}

// Degree returns the out-degree of a local node.
func (cg *Graph) Degree(local int) int {
	return cg.rowPtr[local+1] - cg.rowPtr[local]
}

// Neighbors invokes visit for every edge leaving the local node with
// the neighbor's local index and the edge cost.
// Complexity: O(degree).
func (cg *Graph) Neighbors(local int, visit func(nbr int, cost float64)) {
	for i, end := cg.rowPtr[local], cg.rowPtr[local+1]; i < end; i++ {
		visit(int(cg.nbrs[i]), cg.costs[i])
	}
}
