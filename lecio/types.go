// Package lecio defines the point-set type and sentinel errors for grid
// and result interchange.
package lecio

import (
	"errors"
)

// Sentinel errors for interchange operations.
var (
	// ErrBadRecord indicates a malformed CSV row (wrong field count or
	// unparsable number).
	ErrBadRecord = errors.New("lecio: malformed record")

	// ErrNoPoints indicates an input file with no data rows.
	ErrNoPoints = errors.New("lecio: input contains no points")

	// ErrBadLattice indicates points that do not tile a regular
	// row-major nx×ny lattice.
	ErrBadLattice = errors.New("lecio: points do not form a regular lattice")

	// ErrBadFormat indicates a VTK file that does not match the legacy
	// structured-grid layout written by this package.
	ErrBadFormat = errors.New("lecio: unrecognized VTK structure")

	// ErrLengthMismatch indicates a result array whose length differs
	// from the grid node count.
	ErrLengthMismatch = errors.New("lecio: result length does not match grid")
)

// PointSet is a flat row-major lattice of X/Y/Z points with its
// inferred shape and spacing, ready for grid.FromPoints.
type PointSet struct {
	X, Y, Z []float64
	Nx, Ny  int
	// Dx is the spacing inferred from consecutive X coordinates (or Y
	// when the lattice is a single column). Zero when underivable.
	Dx float64
}
