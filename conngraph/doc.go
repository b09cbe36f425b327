// Package conngraph builds weighted connectivity graphs over the nodes
// of an elevation niche.
//
// Given the member nodes of a niche band, Build yields the induced
// subgraph of the grid: members become vertices, grid-adjacent member
// pairs become edges, and each edge carries a float cost produced by a
// pluggable CostFunc combining the geometric step length with the
// elevation difference across the edge. Marine nodes never appear.
//
// The adjacency is stored in compressed sparse row (CSR) form over
// dense local indices, so the path engine can run many single-source
// searches without map lookups in the hot loop.
package conngraph
