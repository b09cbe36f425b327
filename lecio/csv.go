package lecio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/geodels/biolec/grid"
)

// ReadPointsCSV loads a headerless delimiter-separated file of X Y Z
// rows in row-major lattice order and infers the lattice shape: nx is
// the length of the first constant-Y run, ny the row count. Fails with
// ErrBadRecord on malformed rows, ErrNoPoints on empty input, and
// grid.ErrShapeMismatch when the point count does not tile nx×ny.
// Complexity: O(n).
func ReadPointsCSV(path string, delim rune) (*PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lecio: open %s: %w", path, err)
	}
	defer f.Close()

	return readPoints(f, delim)
}

// readPoints does the actual parsing; split out for testability.
func readPoints(r io.Reader, delim rune) (*PointSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	ps := &PointSet{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		var vals [3]float64
		for i, field := range rec {
			v, perr := strconv.ParseFloat(field, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: field %q", ErrBadRecord, field)
			}
			vals[i] = v
		}
		ps.X = append(ps.X, vals[0])
		ps.Y = append(ps.Y, vals[1])
		ps.Z = append(ps.Z, vals[2])
	}
	if len(ps.Z) == 0 {
		return nil, ErrNoPoints
	}

	if err := ps.inferShape(); err != nil {
		return nil, err
	}

	return ps, nil
}

// inferShape derives Nx/Ny/Dx from the coordinate columns. The first
// row of the lattice is the leading run of constant Y.
func (ps *PointSet) inferShape() error {
	n := len(ps.Z)
	nx := n
	for i := 1; i < n; i++ {
		if ps.Y[i] != ps.Y[0] {
			nx = i

			break
		}
	}
	if n%nx != 0 {
		return fmt.Errorf("%w: %d points over row length %d", grid.ErrShapeMismatch, n, nx)
	}
	ps.Nx = nx
	ps.Ny = n / nx

	// Rows must repeat the same X sequence to form a regular lattice.
	for i := nx; i < n; i++ {
		if ps.X[i] != ps.X[i%nx] {
			return ErrBadLattice
		}
	}

	switch {
	case nx > 1:
		ps.Dx = ps.X[1] - ps.X[0]
	case ps.Ny > 1:
		ps.Dx = ps.Y[nx] - ps.Y[0]
	}
	if ps.Dx < 0 {
		ps.Dx = -ps.Dx
	}

	return nil
}

// Grid materializes the point set into a grid with the given options;
// opts.Dx is overridden by the inferred spacing when left zero.
func (ps *PointSet) Grid(opts grid.Options) (*grid.Grid, error) {
	if opts.Dx == 0 {
		opts.Dx = ps.Dx
	}

	return grid.FromPoints(ps.X, ps.Y, ps.Z, ps.Nx, ps.Ny, opts)
}

// WriteCSV writes one "X Y Z LEC" row per grid node, in row-major node
// order, using the given delimiter. NaN sentinels serialize as "NaN".
// Fails with ErrLengthMismatch when lec does not cover the grid.
// Complexity: O(n).
func WriteCSV(path string, g *grid.Grid, lec []float64, delim rune) error {
	if len(lec) != g.Len() {
		return ErrLengthMismatch
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lecio: create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	cw.Comma = delim
	for i, n := 0, g.Len(); i < n; i++ {
		rec := []string{
			formatFloat(g.X(i)),
			formatFloat(g.Y(i)),
			formatFloat(g.Z(i)),
			formatFloat(lec[i]),
		}
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("lecio: write %s: %w", path, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// formatFloat renders values compactly while keeping NaN readable by
// strconv.ParseFloat on the way back in.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
