// Package pathcost computes shortest-path costs and closeness scores
// over niche connectivity graphs.
//
// Distances runs a single-source Dijkstra search with non-negative
// float costs, processing nodes in order of increasing distance via a
// min-heap priority queue with the lazy-decrease-key strategy: improved
// distances push duplicate heap entries, and stale entries are skipped
// on extraction against a visited set.
//
// Closeness condenses one search into the LEC contribution of a node:
// the reciprocal of the mean shortest-path cost to every *reachable*
// other member of the niche. Members in disconnected components are
// excluded from the mean rather than treated as infinite-cost terms; a
// node with no reachable member at all scores zero.
//
// Complexity per source: O((M + E) log M) time, O(M + E) space, where
// M is the niche size and E its edge count.
package pathcost
