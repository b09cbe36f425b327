package lecio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/geodels/biolec/grid"
)

// vtkHeader is the fixed preamble of the legacy ASCII format.
const vtkHeader = `# vtk DataFile Version 3.0
biolec landscape elevational connectivity
ASCII
DATASET STRUCTURED_GRID
`

// WriteVTK writes the grid and its LEC array as a legacy-ASCII VTK
// structured grid: points at (X, Y, Z) with an "LEC" scalar per point,
// in the grid's row-major node order. External 3D viewers (ParaView
// and friends) consume this directly.
// Fails with ErrLengthMismatch when lec does not cover the grid.
// Complexity: O(n).
func WriteVTK(path string, g *grid.Grid, lec []float64) error {
	if len(lec) != g.Len() {
		return ErrLengthMismatch
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lecio: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	n := g.Len()
	fmt.Fprint(w, vtkHeader)
	fmt.Fprintf(w, "DIMENSIONS %d %d 1\n", g.Nx(), g.Ny())
	fmt.Fprintf(w, "POINTS %d double\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s %s %s\n", formatFloat(g.X(i)), formatFloat(g.Y(i)), formatFloat(g.Z(i)))
	}
	fmt.Fprintf(w, "POINT_DATA %d\n", n)
	fmt.Fprint(w, "SCALARS LEC double 1\nLOOKUP_TABLE default\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s\n", formatFloat(lec[i]))
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("lecio: write %s: %w", path, err)
	}

	return nil
}

// VTKGrid is the round-trip view of a structured-grid file: lattice
// dimensions, point coordinates, and the LEC scalar array, all in the
// writer's row-major order.
type VTKGrid struct {
	Nx, Ny  int
	X, Y, Z []float64
	LEC     []float64
}

// ReadVTK parses a legacy-ASCII structured grid written by WriteVTK.
// It tolerates blank lines but requires the section order DIMENSIONS →
// POINTS → POINT_DATA/SCALARS; anything else fails with ErrBadFormat.
// Complexity: O(n).
func ReadVTK(path string) (*VTKGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lecio: open %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	v := &VTKGrid{}
	var n int

	// 1) Seek DIMENSIONS.
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "DIMENSIONS") {
			continue
		}
		if _, err = fmt.Sscanf(line, "DIMENSIONS %d %d 1", &v.Nx, &v.Ny); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFormat, line)
		}

		break
	}
	if v.Nx <= 0 || v.Ny <= 0 {
		return nil, fmt.Errorf("%w: missing or empty DIMENSIONS", ErrBadFormat)
	}
	n = v.Nx * v.Ny

	// 2) POINTS block.
	if err = expectPrefix(sc, "POINTS"); err != nil {
		return nil, err
	}
	v.X = make([]float64, 0, n)
	v.Y = make([]float64, 0, n)
	v.Z = make([]float64, 0, n)
	for len(v.Z) < n && sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: point row %q", ErrBadFormat, sc.Text())
		}
		var p [3]float64
		for i, field := range fields {
			if p[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%w: point value %q", ErrBadFormat, field)
			}
		}
		v.X = append(v.X, p[0])
		v.Y = append(v.Y, p[1])
		v.Z = append(v.Z, p[2])
	}
	if len(v.Z) != n {
		return nil, fmt.Errorf("%w: expected %d points, got %d", ErrBadFormat, n, len(v.Z))
	}

	// 3) SCALARS LEC block.
	if err = expectPrefix(sc, "POINT_DATA"); err != nil {
		return nil, err
	}
	if err = expectPrefix(sc, "SCALARS LEC"); err != nil {
		return nil, err
	}
	if err = expectPrefix(sc, "LOOKUP_TABLE"); err != nil {
		return nil, err
	}
	v.LEC = make([]float64, 0, n)
	for len(v.LEC) < n && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		val, perr := strconv.ParseFloat(line, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: scalar value %q", ErrBadFormat, line)
		}
		v.LEC = append(v.LEC, val)
	}
	if len(v.LEC) != n {
		return nil, fmt.Errorf("%w: expected %d scalars, got %d", ErrBadFormat, n, len(v.LEC))
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("lecio: read: %w", err)
	}

	return v, nil
}

// expectPrefix advances past blank lines to the next content line and
// verifies it starts with the given prefix.
func expectPrefix(sc *bufio.Scanner, prefix string) error {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, prefix) {
			return nil
		}

		return fmt.Errorf("%w: expected %q section, got %q", ErrBadFormat, prefix, line)
	}

	return fmt.Errorf("%w: truncated before %q section", ErrBadFormat, prefix)
}
