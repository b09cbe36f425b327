// Package lec defines the session-level sentinel errors.
package lec

import (
	"errors"
)

// Sentinel errors for session configuration and access.
var (
	// ErrInvalidConfig indicates conflicting or out-of-range
	// configuration (mutually exclusive boundary modes, negative niche
	// width, negative spacing); surfaced before any work begins.
	ErrInvalidConfig = errors.New("lec: invalid configuration")

	// ErrNilGrid indicates a nil grid was passed to NewSession.
	ErrNilGrid = errors.New("lec: grid is nil")

	// ErrNotComputed indicates output was requested before Compute ran.
	ErrNotComputed = errors.New("lec: result requested before computation")

	// ErrBadBins indicates a non-positive bin count for statistics.
	ErrBadBins = errors.New("lec: bin count must be positive")
)
