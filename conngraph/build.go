package conngraph

import (
	"fmt"

	"github.com/geodels/biolec/grid"
)

// Build constructs the induced subgraph over the given member nodes
// (typically the output of niche.Binner.Members, ascending and
// non-marine). Edges connect grid-adjacent member pairs under the
// grid's boundary mode and connectivity; each edge cost comes from
// cost, or DefaultCost when cost is nil.
//
// Returns ErrNilGrid for a nil grid, ErrEmptyNiche for an empty member
// list, and ErrNegativeCost (wrapped with the offending edge) when the
// cost function misbehaves.
//
// Complexity: O(M·d) time and memory, M = len(members), d = 4 or 8.
func Build(g *grid.Grid, members []int, cost CostFunc) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(members) == 0 {
		return nil, ErrEmptyNiche
	}
	if cost == nil {
		cost = DefaultCost
	}

	// 1) Local index mapping. Membership doubles as the band filter:
	//    a neighbor outside the map is outside the niche (or marine).
	local := make(map[int]int, len(members))
	for i, n := range members {
		local[n] = i
	}

	nodes := make([]int, len(members))
	copy(nodes, members)

	dx := g.Dx()
	rowPtr := make([]int, len(members)+1)
	nbrs := make([]int32, 0, len(members)*4)
	costs := make([]float64, 0, len(members)*4)

	// 2) CSR rows in member order; grid.Neighbors already applies the
	//    boundary mode and supplies the geometric step length.
	var buildErr error
	for u, node := range nodes {
		zu := g.Z(node)
		g.Neighbors(node, func(nbr int, step float64) {
			if buildErr != nil {
				return
			}
			v, ok := local[nbr]
			if !ok {
				return // neighbor not in this niche
			}
			w := cost(step, g.Z(nbr)-zu, dx)
			if w < 0 {
				buildErr = fmt.Errorf("%w: %d→%d cost=%g", ErrNegativeCost, node, nbr, w)

				return
			}
			nbrs = append(nbrs, int32(v))
			costs = append(costs, w)
		})
		if buildErr != nil {
			return nil, buildErr
		}
		rowPtr[u+1] = len(nbrs)
	}

	return &Graph{
		nodes:  nodes,
		local:  local,
		rowPtr: rowPtr,
		nbrs:   nbrs,
		costs:  costs,
	}, nil
}
