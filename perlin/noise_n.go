package perlin

import (
	"math"

	"github.com/on-the-ground/perlin_ive_go/lattice"
)

// NoiseN evaluates noise over any number of dimensions by blending the
// corners of the enclosing unit hypercube.
type NoiseN struct {
	spectrum
	dims    int
	lattice lattice.Lattice

	// scratch, reused across calls
	scaled []float64
	octX   []float64
	origin []int
	corner []int
	dx     []float64
	values []float64
}

// NewN builds the general form regardless of dimensionality.
func NewN(opts ...Option) (*NoiseN, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	return newNoiseN(s), nil
}

func newNoiseN(s settings) *NoiseN {
	dims := s.cfg.Dimensions
	lat, seed := newLattice(s)
	logConstructed(s, "nd", seed)
	return &NoiseN{
		spectrum: newSpectrum(s),
		dims:     dims,
		lattice:  lat,
		scaled:   make([]float64, dims),
		octX:     make([]float64, dims),
		origin:   make([]int, dims),
		corner:   make([]int, dims),
		dx:       make([]float64, dims),
		values:   make([]float64, 1<<dims),
	}
}

func (n *NoiseN) Dimensions() int {
	return n.dims
}

func (n *NoiseN) Get(x ...float64) (float64, error) {
	if err := n.checkCoords(n.dims, x); err != nil {
		return 0, err
	}
	for i, v := range x {
		n.scaled[i] = v / n.lam
	}

	value := 0.0
	for i, sca, per := 0, 1.0, 1.0; i < n.oct; i, sca, per = i+1, sca*n.sca, per*n.per {
		for j, v := range n.scaled {
			n.octX[j] = v * sca
		}
		value += n.sample(n.octX) * per
	}
	return value*n.fac + n.min, nil
}

// sample returns the single-octave value in [0, 1) at x.
func (n *NoiseN) sample(x []float64) float64 {
	for i, v := range x {
		f := math.Floor(v)
		n.origin[i] = int(f)
		n.dx[i] = v - f
	}

	// Bit j of the corner index selects the +1 offset on axis j.
	for i := range n.values {
		for j := range n.corner {
			n.corner[j] = n.origin[j] + (i >> j & 1)
		}
		n.values[i] = n.lattice.ValueAt(n.corner)
	}

	// Pass i collapses axis i, pairing corners that differ only in bit i.
	for i := 0; i < n.dims; i++ {
		for j, span := 0, len(n.values)>>i; j < span; j += 2 {
			n.values[j>>1] = n.interp(n.values[j], n.values[j+1], n.dx[i])
		}
	}
	return n.values[0]
}
