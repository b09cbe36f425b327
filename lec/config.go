package lec

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/geodels/biolec/grid"
	"github.com/geodels/biolec/niche"
)

// Config carries every user-facing knob of a LEC run. Field names track
// the original bioLEC parameterization (sigmap, sigmav, sl). A Config
// is loadable from YAML and mergeable with command-line flags before
// Validate is called.
type Config struct {
	// Periodic wraps opposite grid edges. Mutually exclusive with
	// Symmetric.
	Periodic bool `yaml:"periodic"`

	// Symmetric mirrors grid edges. Mutually exclusive with Periodic.
	Symmetric bool `yaml:"symmetric"`

	// Sigmap sets the niche half-width as a fraction of the non-marine
	// elevation range. Ignored when Sigmav is set.
	Sigmap float64 `yaml:"sigmap" validate:"gte=0"`

	// Sigmav, when non-nil, sets a fixed niche half-width in elevation
	// units and overrides Sigmap.
	Sigmav *float64 `yaml:"sigmav" validate:"omitempty,gte=0"`

	// Diagonals enables 8-connectivity; 4-connectivity otherwise.
	Diagonals bool `yaml:"diagonals"`

	// SeaLevel is the marine threshold; nodes with Z below it are
	// excluded from every computation. The default disables the mask.
	SeaLevel float64 `yaml:"sl"`

	// Dx is the cell spacing. Zero means "infer from the input
	// coordinates"; negative values are rejected.
	Dx float64 `yaml:"dx" validate:"gte=0"`

	// Workers sets the worker pool size; zero means one worker per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`
}

// DefaultConfig mirrors the original bioLEC defaults: sigmap 0.1,
// diagonals on, marine mask effectively disabled, auto worker count.
func DefaultConfig() Config {
	return Config{
		Sigmap:    niche.DefaultPercent,
		Diagonals: true,
		SeaLevel:  grid.DefaultSeaLevel,
	}
}

// validate is shared across Sessions; validator instances are
// concurrency-safe and cache struct metadata.
var validate = validator.New()

// Validate checks the Config before any work begins. All violations map
// to ErrInvalidConfig so callers can branch with errors.Is.
func (c Config) Validate() error {
	if c.Periodic && c.Symmetric {
		return fmt.Errorf("%w: periodic and symmetric boundaries are mutually exclusive", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Boundary resolves the boolean pair into a grid boundary mode.
func (c Config) Boundary() grid.BoundaryMode {
	switch {
	case c.Periodic:
		return grid.BoundaryPeriodic
	case c.Symmetric:
		return grid.BoundarySymmetric
	default:
		return grid.BoundaryNone
	}
}

// Conn resolves the diagonals flag into a grid connectivity.
func (c Config) Conn() grid.Connectivity {
	if c.Diagonals {
		return grid.Conn8
	}

	return grid.Conn4
}

// Width resolves the sigmav/sigmap pair into a niche width variant,
// fixed width taking precedence.
func (c Config) Width() niche.Width {
	if c.Sigmav != nil {
		return niche.Fixed(*c.Sigmav)
	}

	return niche.Percent(c.Sigmap)
}

// GridOptions assembles grid construction options from the Config. The
// dx argument is used when c.Dx is zero (spacing inferred from input).
func (c Config) GridOptions(dx float64) grid.Options {
	if c.Dx > 0 {
		dx = c.Dx
	}

	return grid.Options{
		Dx:       dx,
		Boundary: c.Boundary(),
		Conn:     c.Conn(),
		SeaLevel: c.SeaLevel,
	}
}
