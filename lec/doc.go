// Package lec orchestrates the full Landscape Elevational Connectivity
// computation: configuration, niche binning, per-node shortest-path
// closeness, parallel execution, and result aggregation.
//
// A Session ties an immutable grid to a validated Config. Compute
// partitions the node set into contiguous chunks across a worker pool;
// each worker owns a private band→graph cache and produces a partial
// result covering only its own nodes, so the final merge is a
// disjoint-slot union requiring no locks. Per-node problems (an empty
// niche, an unexpected task failure) are recorded in the run Report and
// never abort sibling work; marine nodes and failed slots carry a NaN
// sentinel in the output array.
//
// Typical use:
//
//	s, err := lec.NewSession(g, lec.DefaultConfig())
//	if err != nil { ... }
//	if err := s.Compute(ctx); err != nil { ... }
//	values, _ := s.LEC()
//	profile, _ := s.ElevationProfile(20)
package lec
