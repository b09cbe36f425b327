// Package grid defines core types, options, and sentinel errors for the
// elevation-grid model used throughout github.com/geodels/biolec.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrShapeMismatch indicates that a flat point input does not match
	// the declared nx×ny lattice dimensions.
	ErrShapeMismatch = errors.New("grid: point count does not match nx*ny")

	// ErrBadSpacing indicates a non-positive cell spacing.
	ErrBadSpacing = errors.New("grid: spacing must be positive")

	// ErrAllMarine indicates every node lies below the sea level, so no
	// elevation range or connectivity can be derived.
	ErrAllMarine = errors.New("grid: all nodes are below sea level")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// BoundaryMode governs adjacency at the grid edges.
type BoundaryMode int

const (
	// BoundaryNone gives border nodes fewer neighbors; no wraparound.
	BoundaryNone BoundaryMode = iota
	// BoundaryPeriodic wraps opposite edges (column 0 is adjacent to
	// column nx-1, likewise for rows).
	BoundaryPeriodic
	// BoundarySymmetric reflects out-of-range coordinates back into the
	// grid, mirroring edge nodes. Two offsets reflecting onto the same
	// neighbor are both reported, doubling that neighbor's weight
	// contribution; a reflection onto the source cell itself is skipped.
	BoundarySymmetric
)

// DefaultSeaLevel effectively disables the marine mask: no realistic
// elevation lies below it.
const DefaultSeaLevel = -1.0e6

// Options contains tunable parameters for grid construction.
type Options struct {
	// Dx is the cell spacing; must be positive.
	Dx float64
	// Boundary chooses the edge adjacency policy.
	Boundary BoundaryMode
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// SeaLevel is the marine threshold: nodes with Z < SeaLevel are
	// masked out of all graph and path computations.
	SeaLevel float64
}

// DefaultOptions returns Options with unit spacing, hard edges,
// 8-connectivity, and the marine mask disabled.
func DefaultOptions() Options {
	return Options{
		Dx:       1.0,
		Boundary: BoundaryNone,
		Conn:     Conn8,
		SeaLevel: DefaultSeaLevel,
	}
}

// Grid is an immutable regular elevation lattice. Nodes are indexed
// row-major: idx = row*nx + col. Construction deep-copies all inputs.
type Grid struct {
	nx, ny   int
	dx       float64
	z        []float64 // elevation per node, length nx*ny
	x, y     []float64 // coordinates per node, length nx*ny
	boundary BoundaryMode
	conn     Connectivity
	seaLevel float64
	marine   []bool // z[i] < seaLevel
	land     int    // count of non-marine nodes

	offsets []offset // precomputed neighbor offsets for conn
}

// offset is a neighbor displacement with its geometric step length.
type offset struct {
	dx, dy int
	step   float64 // dx spacing for axial moves, √2·dx for diagonal
}
