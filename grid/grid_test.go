package grid_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/geodels/biolec/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged, or badly
// spaced inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		z    [][]float64
		opts grid.Options
		err  error
	}{
		{"EmptyRows", [][]float64{}, grid.DefaultOptions(), grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.DefaultOptions(), grid.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, grid.DefaultOptions(), grid.ErrNonRectangular},
		{"ZeroSpacing", [][]float64{{1, 2}}, grid.Options{Dx: 0}, grid.ErrBadSpacing},
		{"NegativeSpacing", [][]float64{{1, 2}}, grid.Options{Dx: -2}, grid.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.z, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.z, err, tc.err)
			}
		})
	}
}

// TestFromPoints_ShapeMismatch verifies the lattice point-count check.
func TestFromPoints_ShapeMismatch(t *testing.T) {
	xs := []float64{0, 1, 0, 1}
	ys := []float64{0, 0, 1, 1}
	zs := []float64{5, 6, 7} // one short
	_, err := grid.FromPoints(xs, ys, zs, 2, 2, grid.DefaultOptions())
	if !errors.Is(err, grid.ErrShapeMismatch) {
		t.Fatalf("FromPoints error = %v; want ErrShapeMismatch", err)
	}
}

// TestNew_Immutability verifies the input slice is deep-copied.
func TestNew_Immutability(t *testing.T) {
	z := [][]float64{{1, 2}, {3, 4}}
	g, err := grid.New(z, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	z[0][0] = 99
	if g.Z(0) != 1 {
		t.Errorf("Z(0) = %v after caller mutation; want 1", g.Z(0))
	}
}

// TestIndexCoordinate round-trips row-major indexing on a 3×2 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := grid.New([][]float64{{0, 1, 2}, {3, 4, 5}}, grid.DefaultOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for idx := 0; idx < g.Len(); idx++ {
		x, y := g.Coordinate(idx)
		if got := g.Index(x, y); got != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, got)
		}
		if g.Z(idx) != float64(idx) {
			t.Errorf("Z(%d) = %v; want %d", idx, g.Z(idx), idx)
		}
	}
}

//----------------------------------------------------------------------------//
// Marine Mask Tests
//----------------------------------------------------------------------------//

// TestMarineMask checks that nodes strictly below sea level are masked.
func TestMarineMask(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.SeaLevel = 0
	g, err := grid.New([][]float64{{-1, 0}, {2, -3}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	want := []bool{true, false, false, true}
	for i, m := range want {
		if g.Marine(i) != m {
			t.Errorf("Marine(%d) = %v; want %v", i, g.Marine(i), m)
		}
	}
	if g.LandCount() != 2 {
		t.Errorf("LandCount = %d; want 2", g.LandCount())
	}

	min, max, err := g.ElevationRange()
	if err != nil {
		t.Fatalf("ElevationRange error: %v", err)
	}
	if min != 0 || max != 2 {
		t.Errorf("ElevationRange = (%v,%v); want (0,2)", min, max)
	}
}

// TestElevationRange_AllMarine verifies the fully masked grid error.
func TestElevationRange_AllMarine(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.SeaLevel = 100
	g, err := grid.New([][]float64{{1, 2}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, _, err = g.ElevationRange(); !errors.Is(err, grid.ErrAllMarine) {
		t.Fatalf("ElevationRange error = %v; want ErrAllMarine", err)
	}
}

//----------------------------------------------------------------------------//
// Neighbor Enumeration Tests
//----------------------------------------------------------------------------//

// collect gathers sorted neighbor indices of idx.
func collect(g *grid.Grid, idx int) []int {
	var nbrs []int
	g.Neighbors(idx, func(n int, _ float64) { nbrs = append(nbrs, n) })
	sort.Ints(nbrs)

	return nbrs
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// TestNeighbors_NoneConn4 verifies hard-edge adjacency on a 3×3 grid.
func TestNeighbors_NoneConn4(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Conn = grid.Conn4
	g, err := grid.New([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// Corner 0 has two neighbors, center 4 has four.
	if got := collect(g, 0); !equalInts(got, []int{1, 3}) {
		t.Errorf("corner neighbors = %v; want [1 3]", got)
	}
	if got := collect(g, 4); !equalInts(got, []int{1, 3, 5, 7}) {
		t.Errorf("center neighbors = %v; want [1 3 5 7]", got)
	}
}

// TestNeighbors_Conn8Step verifies the diagonal step length.
func TestNeighbors_Conn8Step(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Dx = 2
	g, err := grid.New([][]float64{{0, 0}, {0, 0}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	steps := map[int]float64{}
	g.Neighbors(0, func(n int, step float64) { steps[n] = step })
	if steps[1] != 2 || steps[2] != 2 {
		t.Errorf("axial steps = %v/%v; want 2/2", steps[1], steps[2])
	}
	if math.Abs(steps[3]-2*math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal step = %v; want 2√2", steps[3])
	}
}

// TestNeighbors_Periodic verifies wraparound: column 0 touches column nx-1.
func TestNeighbors_Periodic(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Conn = grid.Conn4
	opts.Boundary = grid.BoundaryPeriodic
	g, err := grid.New([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// Corner (0,0) wraps west to (2,0)=2 and north to (0,2)=6.
	if got := collect(g, 0); !equalInts(got, []int{1, 2, 3, 6}) {
		t.Errorf("periodic corner neighbors = %v; want [1 2 3 6]", got)
	}
}

// TestNeighbors_Symmetric verifies mirror reflection at edges. On a 3×3
// grid the west reflection of (0,0) is (0,0) itself and is skipped, so
// the remaining reflections duplicate in-grid neighbors.
func TestNeighbors_Symmetric(t *testing.T) {
	opts := grid.DefaultOptions()
	opts.Conn = grid.Conn4
	opts.Boundary = grid.BoundarySymmetric
	g, err := grid.New([][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, opts)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	counts := map[int]int{}
	g.Neighbors(0, func(n int, _ float64) { counts[n]++ })
	// West (-1,0) → (0,0) skipped; north (0,-1) → (0,0) skipped.
	// East → 1, south → 3, each once.
	if counts[0] != 0 {
		t.Errorf("self-reflection reported %d times; want 0", counts[0])
	}
	if counts[1] != 1 || counts[3] != 1 {
		t.Errorf("neighbor counts = %v; want {1:1, 3:1}", counts)
	}
}
