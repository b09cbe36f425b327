package lec

import (
	"context"
	"log/slog"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/geodels/biolec/conngraph"
	"github.com/geodels/biolec/grid"
	"github.com/geodels/biolec/niche"
	"github.com/geodels/biolec/pathcost"
)

// Session owns one LEC computation over an immutable grid. Create it
// with NewSession, run Compute once, then read LEC, Report, and
// ElevationProfile. A Session is not safe for concurrent method calls;
// the parallelism lives inside Compute.
type Session struct {
	g       *grid.Grid
	binner  *niche.Binner
	cost    conngraph.CostFunc
	workers int
	log     *slog.Logger

	computed   bool
	lec        []float64
	emptyNiche []int // nodes whose niche held no other member
	failed     []int // nodes whose task failed unexpectedly
}

// Option customizes a Session beyond what Config carries.
type Option func(*Session)

// WithCost overrides the edge cost policy (default conngraph.DefaultCost).
func WithCost(fn conngraph.CostFunc) Option {
	return func(s *Session) { s.cost = fn }
}

// WithLogger sets the structured logger used for progress reporting.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// NewSession validates cfg, resolves the niche binner against the grid,
// and returns a ready Session. Fails with ErrNilGrid, ErrInvalidConfig,
// niche.ErrBadWidth, or grid.ErrAllMarine before any work begins.
func NewSession(g *grid.Grid, cfg Config, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	binner, err := niche.NewBinner(g, cfg.Width())
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &Session{
		g:       g,
		binner:  binner,
		cost:    conngraph.DefaultCost,
		workers: workers,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// partial is one worker's result: values for a contiguous node range
// plus the per-node incidents found there. Workers never touch shared
// state; the coordinator merges partials after all workers return.
type partial struct {
	start, end int
	vals       []float64
	emptyNiche []int
	failed     []int
}

// Compute runs the full LEC computation: every non-marine node gets a
// closeness score within its own elevation niche; marine nodes and
// failed slots carry NaN. Node ranges are partitioned across the worker
// pool; each worker keeps a private band→graph cache so nodes sharing a
// niche reuse one subgraph build.
//
// Per-node incidents never abort the run: empty niches score 0 with a
// warning, unexpected task failures mark their slot NaN. Both are
// aggregated in Report. Compute returns an error only on context
// cancellation.
//
// Complexity: O(Σ per-niche (M+E) log M) across all nodes, divided by
// the worker count.
func (s *Session) Compute(ctx context.Context) error {
	n := s.g.Len()
	chunks := splitRange(n, s.workers)
	parts := make([]*partial, len(chunks))

	eg, ctx := errgroup.WithContext(ctx)
	for w, ch := range chunks {
		w, ch := w, ch
		eg.Go(func() error {
			p := &partial{
				start: ch[0],
				end:   ch[1],
				vals:  make([]float64, ch[1]-ch[0]),
			}
			cache := make(map[niche.Band]*conngraph.Graph)
			for idx := ch[0]; idx < ch[1]; idx++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				p.vals[idx-ch[0]] = s.computeNode(idx, cache, p)
			}
			parts[w] = p

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	// Disjoint-slot union: each partial owns an exclusive node range.
	out := make([]float64, n)
	s.emptyNiche = s.emptyNiche[:0]
	s.failed = s.failed[:0]
	for _, p := range parts {
		copy(out[p.start:p.end], p.vals)
		s.emptyNiche = append(s.emptyNiche, p.emptyNiche...)
		s.failed = append(s.failed, p.failed...)
	}
	sort.Ints(s.emptyNiche)
	sort.Ints(s.failed)

	s.lec = out
	s.computed = true
	s.log.Info("lec computed",
		slog.Int("nodes", n),
		slog.Int("land", s.g.LandCount()),
		slog.Int("empty_niches", len(s.emptyNiche)),
		slog.Int("failed", len(s.failed)),
		slog.Int("workers", s.workers))

	return nil
}

// computeNode resolves one node's LEC value and records incidents on
// the worker's partial.
func (s *Session) computeNode(idx int, cache map[niche.Band]*conngraph.Graph, p *partial) float64 {
	if s.g.Marine(idx) {
		return math.NaN()
	}

	band := s.binner.Band(idx)
	cg, ok := cache[band]
	if !ok {
		members := s.binner.Members(band)
		if len(members) < 2 {
			// The band holds nothing beyond the node itself.
			p.emptyNiche = append(p.emptyNiche, idx)

			return 0
		}
		var err error
		cg, err = conngraph.Build(s.g, members, s.cost)
		if err != nil {
			s.log.Warn("niche graph build failed", slog.Int("node", idx), slog.Any("err", err))
			p.failed = append(p.failed, idx)

			return math.NaN()
		}
		cache[band] = cg
	}

	c, err := pathcost.Closeness(cg, idx)
	if err != nil {
		s.log.Warn("closeness failed", slog.Int("node", idx), slog.Any("err", err))
		p.failed = append(p.failed, idx)

		return math.NaN()
	}

	return c
}

// splitRange partitions [0,n) into at most k contiguous, near-equal,
// non-empty chunks.
func splitRange(n, k int) [][2]int {
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}
	chunks := make([][2]int, 0, k)
	size, rem := n/k, n%k
	start := 0
	for i := 0; i < k; i++ {
		end := start + size
		if i < rem {
			end++
		}
		chunks = append(chunks, [2]int{start, end})
		start = end
	}

	return chunks
}

// LEC returns the computed array, one value per grid node in row-major
// order: closeness for land nodes, NaN for marine or failed slots.
// Fails with ErrNotComputed before Compute has run. The returned slice
// is the session's own; callers must treat it as read-only.
func (s *Session) LEC() ([]float64, error) {
	if !s.computed {
		return nil, ErrNotComputed
	}

	return s.lec, nil
}

// Report summarizes per-node incidents of the last Compute run.
type Report struct {
	// Nodes is the total node count, Land the non-marine subset.
	Nodes, Land int
	// EmptyNiche lists nodes whose niche held no other member (their
	// LEC is 0, flagged as a warning).
	EmptyNiche []int
	// Failed lists nodes whose task failed unexpectedly (LEC is NaN).
	Failed []int
}

// Report returns the aggregate incident report of the last run. Fails
// with ErrNotComputed before Compute has run.
func (s *Session) Report() (Report, error) {
	if !s.computed {
		return Report{}, ErrNotComputed
	}

	return Report{
		Nodes:      s.g.Len(),
		Land:       s.g.LandCount(),
		EmptyNiche: s.emptyNiche,
		Failed:     s.failed,
	}, nil
}
