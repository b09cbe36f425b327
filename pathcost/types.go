// Package pathcost defines sentinel errors for shortest-path and
// closeness computation over niche graphs.
package pathcost

import (
	"errors"
)

// Sentinel errors for path-cost computation.
var (
	// ErrNilGraph indicates a nil connectivity graph.
	ErrNilGraph = errors.New("pathcost: graph is nil")

	// ErrSourceNotMember indicates the source node is not a member of
	// the connectivity graph.
	ErrSourceNotMember = errors.New("pathcost: source node is not a niche member")
)
