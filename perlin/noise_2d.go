package perlin

import (
	"math"

	"github.com/on-the-ground/perlin_ive_go/lattice"
)

// Noise2D is the planar form, specialised to four corners per cell.
// It produces the same values as NoiseN with two dimensions.
type Noise2D struct {
	spectrum
	lattice lattice.Lattice
	corner  [2]int
}

// New2D builds the planar form. Dimensions other than 2 are rejected.
func New2D(opts ...Option) (*Noise2D, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.cfg.Dimensions != 2 {
		return nil, invalid("planar noise needs 2 dimensions, got %d", s.cfg.Dimensions)
	}
	return newNoise2D(s), nil
}

func newNoise2D(s settings) *Noise2D {
	lat, seed := newLattice(s)
	logConstructed(s, "2d", seed)
	return &Noise2D{
		spectrum: newSpectrum(s),
		lattice:  lat,
	}
}

func (n *Noise2D) Dimensions() int {
	return 2
}

func (n *Noise2D) Get(x ...float64) (float64, error) {
	if err := n.checkCoords(2, x); err != nil {
		return 0, err
	}
	return n.At(x[0], x[1]), nil
}

// At evaluates the field at (x, y) without validating the coordinates.
// NaN, infinite or out-of-range input gives an unspecified result.
// It does not allocate.
func (n *Noise2D) At(x, y float64) float64 {
	x /= n.lam
	y /= n.lam

	value := 0.0
	for i, sca, per := 0, 1.0, 1.0; i < n.oct; i, sca, per = i+1, sca*n.sca, per*n.per {
		value += n.sample(x*sca, y*sca) * per
	}
	return value*n.fac + n.min
}

func (n *Noise2D) sample(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	dx := x - fx

	// Same corner order as NoiseN so a memoized lattice fills identically.
	v00 := n.valueAt(ix, iy)
	v10 := n.valueAt(ix+1, iy)
	v01 := n.valueAt(ix, iy+1)
	v11 := n.valueAt(ix+1, iy+1)

	return n.interp(
		n.interp(v00, v10, dx),
		n.interp(v01, v11, dx),
		y-fy,
	)
}

func (n *Noise2D) valueAt(x, y int) float64 {
	n.corner[0], n.corner[1] = x, y
	return n.lattice.ValueAt(n.corner[:])
}
