// Package lecio exchanges elevation grids and LEC results with the
// outside world in two plain formats:
//
//   - CSV point files: one "X Y Z" row per lattice node (configurable
//     delimiter, no header) for input, and "X Y Z LEC" rows for output.
//     The reader infers the nx×ny lattice shape and cell spacing from
//     the coordinates and rejects inputs that do not tile a full
//     rectangle.
//
//   - Legacy-ASCII VTK structured grids carrying elevation and LEC as
//     point data, for external 3D viewers. A matching reader supports
//     round-trip verification.
//
// Raster formats and map reprojection stay out of scope; collaborators
// are expected to hand this package a regular lattice.
package lecio
