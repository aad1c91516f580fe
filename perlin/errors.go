package perlin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every configuration problem reported at construction.
	ErrInvalidConfig = errors.New("perlin: invalid configuration")

	// ErrDimensionMismatch reports a coordinate count that differs from the field's dimensions.
	ErrDimensionMismatch = errors.New("perlin: coordinate count does not match dimensions")

	// ErrNonFiniteCoordinate reports a NaN or infinite coordinate.
	ErrNonFiniteCoordinate = errors.New("perlin: coordinate is not finite")

	// ErrCoordinateRange reports a coordinate that lands beyond ±2^53 on the
	// lattice of some octave, where cells can no longer be told apart.
	ErrCoordinateRange = errors.New("perlin: coordinate out of range")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
