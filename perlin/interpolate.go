package perlin

import "math"

// Interpolator blends a and b by t in [0, 1).
// It should return a at t == 0 and approach b as t approaches 1.
type Interpolator func(a, b, t float64) float64

const (
	InterpolationCosine       = "cosine"
	InterpolationLinear       = "linear"
	InterpolationSmoothstep   = "smoothstep"
	InterpolationSmootherstep = "smootherstep"
)

// Cosine eases with half a cosine period. Its derivative vanishes at both
// ends, so neighbouring cells join without a crease.
func Cosine(a, b, t float64) float64 {
	return (1-math.Cos(math.Pi*t))/2*(b-a) + a
}

func Linear(a, b, t float64) float64 {
	return t*(b-a) + a
}

// Smoothstep eases with 3t²-2t³.
func Smoothstep(a, b, t float64) float64 {
	return t*t*(3-2*t)*(b-a) + a
}

// Smootherstep eases with 6t⁵-15t⁴+10t³, which also flattens the second derivative.
func Smootherstep(a, b, t float64) float64 {
	return t*t*t*(t*(6*t-15)+10)*(b-a) + a
}

// InterpolatorByName looks up a built-in kernel. The empty name is Cosine.
func InterpolatorByName(name string) (Interpolator, bool) {
	switch name {
	case "", InterpolationCosine:
		return Cosine, true
	case InterpolationLinear:
		return Linear, true
	case InterpolationSmoothstep:
		return Smoothstep, true
	case InterpolationSmootherstep:
		return Smootherstep, true
	default:
		return nil, false
	}
}
