// Package perlin generates deterministic, seedable value noise over any
// number of dimensions, summed across octaves into fractal noise.
//
// A field samples a lazily populated integer lattice, blends the 2^N
// corners of the unit hypercube around each point with an interpolation
// kernel, and adds octaves of increasing frequency and decreasing
// amplitude. The sum is rescaled so that every result lies in the
// configured range [min, max).
//
// Construction validates the whole configuration up front; a field that
// was built successfully only fails on malformed coordinates.
//
// Example:
//
//	field, err := perlin.New(
//	    perlin.WithSeed(42),
//	    perlin.WithWavelength(64),
//	    perlin.WithRange(-1, 1),
//	)
//	if err != nil {
//	    return err
//	}
//	height, err := field.Get(x, y)
//
// Fields memoize lattice points and are not safe for concurrent use.
// Wrap a shared field with Synchronized.
package perlin
