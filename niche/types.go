// Package niche defines the band types, width variants, and sentinel
// errors for elevation niche binning.
package niche

import (
	"errors"
)

// Sentinel errors for niche binning.
var (
	// ErrBadWidth indicates a negative niche width parameter.
	ErrBadWidth = errors.New("niche: width must be non-negative")

	// ErrNilGrid indicates a nil grid was passed to NewBinner.
	ErrNilGrid = errors.New("niche: grid is nil")
)

// DefaultPercent is the default fractional band width (sigmap in the
// original bioLEC parameterization).
const DefaultPercent = 0.1

// widthKind tags the Width variant.
type widthKind int

const (
	fixedWidth widthKind = iota
	percentWidth
)

// Width selects how the niche band half-width is derived. Construct one
// with Fixed or Percent; the zero value behaves like Percent(DefaultPercent).
type Width struct {
	kind  widthKind
	value float64
	set   bool
}

// Fixed returns a Width with a constant half-width of v elevation units
// (sigmav in the original bioLEC parameterization).
func Fixed(v float64) Width {
	return Width{kind: fixedWidth, value: v, set: true}
}

// Percent returns a Width whose half-width is p times the non-marine
// elevation range of the grid (sigmap in the original parameterization).
func Percent(p float64) Width {
	return Width{kind: percentWidth, value: p, set: true}
}

// Band is a closed elevation interval [Lo, Hi].
type Band struct {
	Lo, Hi float64
}

// Contains reports whether elevation z lies inside the band.
func (b Band) Contains(z float64) bool {
	return z >= b.Lo && z <= b.Hi
}
