package niche

import (
	"github.com/geodels/biolec/grid"
)

// Binner derives per-node elevation bands for a grid. It is immutable
// after construction and safe for concurrent use.
type Binner struct {
	g    *grid.Grid
	half float64 // resolved band half-width
}

// NewBinner resolves the Width variant against the grid and returns a
// Binner. Percent widths are multiplied by the non-marine elevation
// range exactly once here; no runtime branching remains afterwards.
// Returns ErrNilGrid for a nil grid, ErrBadWidth for a negative width
// parameter, and grid.ErrAllMarine when a Percent width cannot be
// resolved because every node is masked.
// Complexity: O(nx×ny) for the range scan, O(1) afterwards.
func NewBinner(g *grid.Grid, w Width) (*Binner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !w.set {
		w = Percent(DefaultPercent)
	}
	if w.value < 0 {
		return nil, ErrBadWidth
	}

	half := w.value
	if w.kind == percentWidth {
		min, max, err := g.ElevationRange()
		if err != nil {
			return nil, err
		}
		half = w.value * (max - min)
	}

	return &Binner{g: g, half: half}, nil
}

// HalfWidth returns the resolved band half-width.
func (b *Binner) HalfWidth() float64 { return b.half }

// Band returns the niche band of node idx: the closed interval centered
// on the node's own elevation. Callers must not request bands for
// marine nodes; those nodes own no niche.
// Complexity: O(1).
func (b *Binner) Band(idx int) Band {
	z := b.g.Z(idx)

	return Band{Lo: z - b.half, Hi: z + b.half}
}

// Members returns the indices of all non-marine nodes whose elevation
// falls inside band, in ascending node order.
// Complexity: O(nx×ny).
func (b *Binner) Members(band Band) []int {
	var members []int
	for i, n := 0, b.g.Len(); i < n; i++ {
		if b.g.Marine(i) {
			continue
		}
		if band.Contains(b.g.Z(i)) {
			members = append(members, i)
		}
	}

	return members
}

// ForEach invokes visit for every non-marine node with its band, in
// ascending node order. The iteration is lazy: bands are derived on the
// fly and never stored.
// Complexity: O(nx×ny) calls.
func (b *Binner) ForEach(visit func(idx int, band Band)) {
	for i, n := 0, b.g.Len(); i < n; i++ {
		if b.g.Marine(i) {
			continue
		}
		visit(i, b.Band(i))
	}
}
