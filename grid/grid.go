package grid

import (
	"math"
)

// New constructs a Grid from a non-empty, rectangular 2D elevation
// slice. It deep-copies the input to ensure immutability and synthesizes
// node coordinates from the spacing (X = col·dx, Y = row·dx).
// Returns ErrEmptyGrid if z has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadSpacing if opts.Dx ≤ 0.
// Complexity: O(nx×ny) time and memory.
func New(z [][]float64, opts Options) (*Grid, error) {
	if len(z) == 0 || len(z[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	ny, nx := len(z), len(z[0])
	for _, row := range z {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
	}
	if opts.Dx <= 0 {
		return nil, ErrBadSpacing
	}

	n := nx * ny
	elev := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for r := 0; r < ny; r++ {
		for c := 0; c < nx; c++ {
			i := r*nx + c
			elev[i] = z[r][c]
			xs[i] = float64(c) * opts.Dx
			ys[i] = float64(r) * opts.Dx
		}
	}

	return build(nx, ny, xs, ys, elev, opts), nil
}

// FromPoints constructs a Grid from flat X/Y/Z point columns laid out on
// a regular nx×ny lattice in row-major order, the form produced by CSV
// point exports. Coordinates are kept as given; only Z drives the marine
// mask and all path costs.
// Returns ErrShapeMismatch if any column length differs from nx*ny,
// ErrEmptyGrid if nx or ny is non-positive,
// ErrBadSpacing if opts.Dx ≤ 0.
// Complexity: O(nx×ny) time and memory.
func FromPoints(xs, ys, zs []float64, nx, ny int, opts Options) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Dx <= 0 {
		return nil, ErrBadSpacing
	}
	n := nx * ny
	if len(xs) != n || len(ys) != n || len(zs) != n {
		return nil, ErrShapeMismatch
	}

	// Deep copy to prevent external mutation.
	cx := make([]float64, n)
	cy := make([]float64, n)
	cz := make([]float64, n)
	copy(cx, xs)
	copy(cy, ys)
	copy(cz, zs)

	return build(nx, ny, cx, cy, cz, opts), nil
}

// build assembles the Grid once inputs are validated and copied.
func build(nx, ny int, xs, ys, zs []float64, opts Options) *Grid {
	g := &Grid{
		nx:       nx,
		ny:       ny,
		dx:       opts.Dx,
		z:        zs,
		x:        xs,
		y:        ys,
		boundary: opts.Boundary,
		conn:     opts.Conn,
		seaLevel: opts.SeaLevel,
		offsets:  neighborOffsets(opts.Conn, opts.Dx),
	}

	g.marine = make([]bool, len(zs))
	for i, z := range zs {
		if z < opts.SeaLevel {
			g.marine[i] = true
		} else {
			g.land++
		}
	}

	return g
}

// neighborOffsets precomputes the displacement table for the chosen
// connectivity, pairing each offset with its geometric step length.
func neighborOffsets(conn Connectivity, dx float64) []offset {
	diag := math.Sqrt2 * dx
	axial := []offset{
		{0, -1, dx}, {1, 0, dx}, {0, 1, dx}, {-1, 0, dx},
	}
	if conn != Conn8 {
		return axial
	}

	return append(axial,
		offset{1, -1, diag}, offset{1, 1, diag},
		offset{-1, 1, diag}, offset{-1, -1, diag},
	)
}

// Nx returns the grid width in cells.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the grid height in cells.
func (g *Grid) Ny() int { return g.ny }

// Dx returns the cell spacing.
func (g *Grid) Dx() float64 { return g.dx }

// Len returns the total node count nx*ny.
func (g *Grid) Len() int { return g.nx * g.ny }

// Boundary returns the configured boundary mode.
func (g *Grid) Boundary() BoundaryMode { return g.boundary }

// Conn returns the configured connectivity.
func (g *Grid) Conn() Connectivity { return g.conn }

// SeaLevel returns the marine threshold.
func (g *Grid) SeaLevel() float64 { return g.seaLevel }

// Z returns the elevation of node idx.
func (g *Grid) Z(idx int) float64 { return g.z[idx] }

// X returns the x-coordinate of node idx.
func (g *Grid) X(idx int) float64 { return g.x[idx] }

// Y returns the y-coordinate of node idx.
func (g *Grid) Y(idx int) float64 { return g.y[idx] }

// Marine reports whether node idx lies below the sea level.
func (g *Grid) Marine(idx int) bool { return g.marine[idx] }

// LandCount returns the number of non-marine nodes.
func (g *Grid) LandCount() int { return g.land }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.nx && y >= 0 && y < g.ny
}

// Index maps (x,y) to a row-major index: y*Nx + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.nx + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.nx, idx / g.nx
}

// ElevationRange returns the minimum and maximum elevation over
// non-marine nodes. Returns ErrAllMarine when the mask covers the
// entire grid.
// Complexity: O(nx×ny).
func (g *Grid) ElevationRange() (min, max float64, err error) {
	if g.land == 0 {
		return 0, 0, ErrAllMarine
	}
	min, max = math.Inf(1), math.Inf(-1)
	for i, z := range g.z {
		if g.marine[i] {
			continue
		}
		if z < min {
			min = z
		}
		if z > max {
			max = z
		}
	}

	return min, max, nil
}

// Neighbors enumerates the boundary-adjusted neighbors of node idx,
// invoking visit with each neighbor's index and the geometric step
// length of the move (Dx for axial moves, √2·Dx for diagonal ones).
// Marine neighbors are reported; callers filter by their own policy.
// Under BoundarySymmetric a reflection may land on idx itself; such
// self-moves are skipped. Duplicate neighbors (two offsets resolving to
// the same cell under reflection or wraparound) are reported each time.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(idx int, visit func(nbr int, step float64)) {
	x, y := g.Coordinate(idx)
	for _, o := range g.offsets {
		nbr, ok := g.resolve(x+o.dx, y+o.dy)
		if !ok || nbr == idx {
			continue
		}
		visit(nbr, o.step)
	}
}

// resolve maps raw neighbor coordinates to a node index according to the
// boundary mode. The second return is false when the move leaves the
// grid under BoundaryNone.
func (g *Grid) resolve(x, y int) (int, bool) {
	switch g.boundary {
	case BoundaryPeriodic:
		x = ((x % g.nx) + g.nx) % g.nx
		y = ((y % g.ny) + g.ny) % g.ny
	case BoundarySymmetric:
		if x < 0 {
			x = -x - 1
		} else if x >= g.nx {
			x = 2*g.nx - x - 1
		}
		if y < 0 {
			y = -y - 1
		} else if y >= g.ny {
			y = 2*g.ny - y - 1
		}
	default:
		if !g.InBounds(x, y) {
			return 0, false
		}
	}

	return g.Index(x, y), true
}
