// Package biolec computes Landscape Elevational Connectivity (LEC) over
// regular elevation grids.
//
// LEC measures, for every grid node, how well connected that node is to
// other sites of similar elevation: shortest paths are computed inside a
// bounded elevation band (the node's "niche") with edge costs that grow
// with elevation difference, and the node's score is the reciprocal of
// the mean path cost to the reachable members of its niche.
//
// The module is organized in small, composable packages:
//
//	grid/      — immutable elevation grid: spacing, boundary modes
//	             (none, periodic, symmetric), 4/8-connectivity, marine mask
//	niche/     — per-node elevation bands with fixed or percent widths
//	conngraph/ — niche-induced subgraphs with float edge costs
//	pathcost/  — Dijkstra shortest paths and closeness scoring
//	lec/       — session: configuration, parallel computation, statistics
//	lecio/     — CSV point grids and VTK structured-grid interchange
//	cmd/biolec — command-line front end
//
// Quick example:
//
//	g, _ := grid.New(elev, grid.DefaultOptions())
//	s, _ := lec.NewSession(g, lec.DefaultConfig())
//	if err := s.Compute(ctx); err != nil { ... }
//	values, _ := s.LEC()
//
// The computation is embarrassingly parallel across nodes; Compute
// partitions the grid across a configurable pool of workers and merges
// their disjoint partial results without locking.
package biolec
