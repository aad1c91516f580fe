// Package lattice holds the integer grid underneath value noise.
//
// Every lattice point, an N-tuple of integers, maps to one scalar in [0, 1).
// Once a point has a value it never changes, which is what makes the noise
// built on top of it a deterministic function of seed and coordinates.
package lattice

import "fmt"

// Lattice returns the scalar assigned to an integer grid point.
type Lattice interface {
	ValueAt(coords []int) float64
}

func checkArity(dims int, coords []int) {
	if len(coords) != dims {
		panic(fmt.Sprintf("lattice: got %d coordinates, want %d", len(coords), dims))
	}
}
