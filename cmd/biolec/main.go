// Command biolec computes Landscape Elevational Connectivity over a
// regular elevation grid loaded from a CSV point file, writing per-node
// results as CSV and optionally as a VTK structured grid for 3D viewers.
package main

import (
	"os"
)

func main() {
	// Cobra handles argument parsing; RunE errors are reported by
	// Execute, so the only job left here is the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
