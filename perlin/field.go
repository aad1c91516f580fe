package perlin

import (
	"fmt"
	"math"

	"github.com/on-the-ground/perlin_ive_go/lattice"
	"github.com/on-the-ground/perlin_ive_go/rng"
	"go.uber.org/zap"
)

// Field is a continuous noise function over Dimensions() real coordinates.
type Field interface {
	// Get evaluates the field. Results lie in [min, max).
	// Every coordinate must stay within ±2^53 lattice cells at the finest
	// octave, that is |x| ≤ 2^53·wavelength·octaveScale^(octaves-1).
	Get(x ...float64) (float64, error)
	Dimensions() int
}

var (
	_ Field = (*NoiseN)(nil)
	_ Field = (*Noise2D)(nil)
)

// New builds a field, choosing the planar implementation for two dimensions
// and the general hypercube implementation otherwise.
func New(opts ...Option) (Field, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.cfg.Dimensions == 2 {
		return newNoise2D(s), nil
	}
	return newNoiseN(s), nil
}

// MustGet is the panic-on-failure variant of Field.Get.
func MustGet(f Field, x ...float64) float64 {
	v, err := f.Get(x...)
	if err != nil {
		panic(err)
	}
	return v
}

// spectrum holds the octave and range parameters shared by both forms.
type spectrum struct {
	min    float64
	lam    float64
	oct    int
	sca    float64 // frequency multiplier between octaves, 1/OctaveScale
	per    float64
	fac    float64
	reach  float64 // largest usable |coordinate| before wavelength scaling
	interp Interpolator
}

// maxLatticeCoord bounds scaled coordinates so that floor and the int
// conversion stay exact.
const maxLatticeCoord = 1 << 53

func newSpectrum(s settings) spectrum {
	fac, _ := normalization(s.cfg.Min, s.cfg.Max, s.cfg.Persistence, s.cfg.Octaves)
	freq := math.Max(1, topFrequency(s.cfg.OctaveScale, s.cfg.Octaves))
	return spectrum{
		min:    s.cfg.Min,
		lam:    s.cfg.Wavelength,
		oct:    s.cfg.Octaves,
		sca:    1 / s.cfg.OctaveScale,
		per:    s.cfg.Persistence,
		fac:    fac,
		reach:  maxLatticeCoord * s.cfg.Wavelength / freq,
		interp: s.interp,
	}
}

// newLattice builds the lattice described by s and returns the numeric
// seed it was keyed with. A caller-supplied source reports seed 0.
func newLattice(s settings) (lattice.Lattice, uint64) {
	if s.src != nil {
		return lattice.New(s.cfg.Dimensions, s.src, lattice.WithLogger(s.logger)), 0
	}
	seed := rng.RandomSeed()
	if s.cfg.Seed != "" {
		seed = rng.ParseSeed(s.cfg.Seed)
	}
	if s.cfg.Lattice == LatticeHashed {
		return lattice.NewHashed(s.cfg.Dimensions, seed), seed
	}
	return lattice.New(s.cfg.Dimensions, rng.NewSeeded(seed), lattice.WithLogger(s.logger)), seed
}

func logConstructed(s settings, form string, seed uint64) {
	_, flat := normalization(s.cfg.Min, s.cfg.Max, s.cfg.Persistence, s.cfg.Octaves)
	if flat {
		s.logger.Warn("persistence is 1, using arithmetic mean normalization",
			zap.Float64("persistence", s.cfg.Persistence),
			zap.Int("octaves", s.cfg.Octaves),
		)
	}
	lat := s.cfg.Lattice
	if lat == "" {
		lat = LatticeMemo
	}
	s.logger.Debug("noise field constructed",
		zap.String("form", form),
		zap.Int("dimensions", s.cfg.Dimensions),
		zap.Uint64("seed", seed),
		zap.Float64("min", s.cfg.Min),
		zap.Float64("max", s.cfg.Max),
		zap.Float64("wavelength", s.cfg.Wavelength),
		zap.Int("octaves", s.cfg.Octaves),
		zap.Float64("octave_scale", s.cfg.OctaveScale),
		zap.Float64("persistence", s.cfg.Persistence),
		zap.String("lattice", lat),
	)
}

func (s spectrum) checkCoords(dims int, x []float64) error {
	if len(x) != dims {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x), dims)
	}
	for i, v := range x {
		if !isFinite(v) {
			return fmt.Errorf("%w: axis %d is %v", ErrNonFiniteCoordinate, i, v)
		}
		if math.Abs(v) > s.reach {
			return fmt.Errorf("%w: axis %d is %v, limit %v", ErrCoordinateRange, i, v, s.reach)
		}
	}
	return nil
}
