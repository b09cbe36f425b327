// Package grid models a regular elevation lattice as an immutable,
// graph-ready structure. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Boundary modes: none (hard edges), periodic (wraparound),
//     symmetric (mirror reflection at edges)
//   - A marine mask: cells with elevation below the configured sea
//     level are excluded from every downstream computation
//   - Row-major node indexing shared by all downstream packages
//
// A Grid is deep-copied on construction and never mutated afterwards,
// so it may be shared freely across worker goroutines without locks.
//
// Construction accepts either a rectangular 2D elevation slice plus a
// cell spacing (New), or flat X/Y/Z point columns on a regular lattice
// (FromPoints), the form produced by CSV point exports.
package grid
