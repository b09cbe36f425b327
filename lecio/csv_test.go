package lecio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geodels/biolec/grid"
	"github.com/geodels/biolec/lecio"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadPointsCSV_Lattice verifies shape and spacing inference on a
// 3×2 space-delimited lattice.
func TestReadPointsCSV_Lattice(t *testing.T) {
	path := writeTemp(t, "pts.csv",
		"0 0 10\n2 0 11\n4 0 12\n0 2 13\n2 2 14\n4 2 15\n")

	ps, err := lecio.ReadPointsCSV(path, ' ')
	require.NoError(t, err)
	require.Equal(t, 3, ps.Nx)
	require.Equal(t, 2, ps.Ny)
	require.Equal(t, 2.0, ps.Dx)
	require.Equal(t, []float64{10, 11, 12, 13, 14, 15}, ps.Z)

	opts := grid.DefaultOptions()
	opts.Dx = 0 // take the inferred spacing
	g, err := ps.Grid(opts)
	require.NoError(t, err)
	require.Equal(t, 2.0, g.Dx())
	require.Equal(t, 12.0, g.Z(2))
}

// TestReadPointsCSV_Errors covers empty, malformed, and ragged inputs.
func TestReadPointsCSV_Errors(t *testing.T) {
	empty := writeTemp(t, "empty.csv", "")
	_, err := lecio.ReadPointsCSV(empty, ' ')
	require.ErrorIs(t, err, lecio.ErrNoPoints)

	bad := writeTemp(t, "bad.csv", "0 0 ten\n")
	_, err = lecio.ReadPointsCSV(bad, ' ')
	require.ErrorIs(t, err, lecio.ErrBadRecord)

	// Seven points cannot tile rows of length three.
	ragged := writeTemp(t, "ragged.csv",
		"0 0 1\n1 0 1\n2 0 1\n0 1 1\n1 1 1\n2 1 1\n0 2 1\n")
	_, err = lecio.ReadPointsCSV(ragged, ' ')
	require.ErrorIs(t, err, grid.ErrShapeMismatch)

	// Second row breaks the X sequence.
	skew := writeTemp(t, "skew.csv", "0 0 1\n1 0 1\n0 1 1\n5 1 1\n")
	_, err = lecio.ReadPointsCSV(skew, ' ')
	require.ErrorIs(t, err, lecio.ErrBadLattice)
}

// TestWriteCSV_RoundTrip writes a grid with its LEC column and reads
// the coordinate lattice back.
func TestWriteCSV_RoundTrip(t *testing.T) {
	g, err := grid.New([][]float64{{1, 2}, {3, 4}}, grid.DefaultOptions())
	require.NoError(t, err)
	lec := []float64{0.5, 0.25, 0.125, 0.0625}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, lecio.WriteCSV(path, g, lec, ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"0,0,1,0.5\n1,0,2,0.25\n0,1,3,0.125\n1,1,4,0.0625\n",
		string(data))

	require.ErrorIs(t, lecio.WriteCSV(path, g, lec[:2], ','), lecio.ErrLengthMismatch)
}
