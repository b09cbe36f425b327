package lec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geodels/biolec/grid"
	"github.com/geodels/biolec/lec"
	"github.com/geodels/biolec/niche"
)

// TestConfig_Validate_BoundaryConflict verifies the mutually exclusive
// boundary flags fail before any computation.
func TestConfig_Validate_BoundaryConflict(t *testing.T) {
	cfg := lec.DefaultConfig()
	cfg.Periodic = true
	cfg.Symmetric = true
	require.ErrorIs(t, cfg.Validate(), lec.ErrInvalidConfig)
}

// TestConfig_Validate_Ranges covers negative widths, spacing, workers.
func TestConfig_Validate_Ranges(t *testing.T) {
	neg := -1.0
	cases := []struct {
		name string
		mut  func(*lec.Config)
	}{
		{"NegativeSigmap", func(c *lec.Config) { c.Sigmap = -0.1 }},
		{"NegativeSigmav", func(c *lec.Config) { c.Sigmav = &neg }},
		{"NegativeDx", func(c *lec.Config) { c.Dx = -2 }},
		{"NegativeWorkers", func(c *lec.Config) { c.Workers = -4 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := lec.DefaultConfig()
			tc.mut(&cfg)
			require.ErrorIs(t, cfg.Validate(), lec.ErrInvalidConfig)
		})
	}

	require.NoError(t, lec.DefaultConfig().Validate())
}

// TestConfig_Resolution checks the Config → grid/niche mappings.
func TestConfig_Resolution(t *testing.T) {
	cfg := lec.DefaultConfig()
	require.Equal(t, grid.BoundaryNone, cfg.Boundary())
	require.Equal(t, grid.Conn8, cfg.Conn())
	require.Equal(t, niche.Percent(0.1), cfg.Width())

	cfg.Periodic = true
	require.Equal(t, grid.BoundaryPeriodic, cfg.Boundary())
	cfg.Periodic = false
	cfg.Symmetric = true
	require.Equal(t, grid.BoundarySymmetric, cfg.Boundary())

	cfg.Diagonals = false
	require.Equal(t, grid.Conn4, cfg.Conn())

	v := 5.0
	cfg.Sigmav = &v
	require.Equal(t, niche.Fixed(5), cfg.Width())

	opts := cfg.GridOptions(2.5)
	require.Equal(t, 2.5, opts.Dx) // inferred spacing used when Dx unset
	cfg.Dx = 10
	require.Equal(t, 10.0, cfg.GridOptions(2.5).Dx)
}
