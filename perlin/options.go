package perlin

import (
	"strconv"

	"github.com/on-the-ground/perlin_ive_go/rng"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type settings struct {
	cfg    Config
	interp Interpolator
	src    rng.Source
	logger *zap.Logger
}

// Option adjusts a field before it is built.
type Option func(*settings)

// WithConfig replaces every declarative parameter at once.
// Options given after it still apply on top.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.cfg.Seed = strconv.FormatInt(seed, 10)
	}
}

// WithSeedString seeds from arbitrary text.
func WithSeedString(seed string) Option {
	return func(s *settings) {
		s.cfg.Seed = seed
	}
}

func WithDimensions(n int) Option {
	return func(s *settings) {
		s.cfg.Dimensions = n
	}
}

// WithRange sets the output interval [min, max).
func WithRange(min, max float64) Option {
	return func(s *settings) {
		s.cfg.Min = min
		s.cfg.Max = max
	}
}

func WithWavelength(wavelength float64) Option {
	return func(s *settings) {
		s.cfg.Wavelength = wavelength
	}
}

func WithOctaves(octaves int) Option {
	return func(s *settings) {
		s.cfg.Octaves = octaves
	}
}

// WithOctaveScale sets the spacing ratio between octaves. Each octave
// samples the lattice at 1/scale times the frequency of the previous one.
func WithOctaveScale(scale float64) Option {
	return func(s *settings) {
		s.cfg.OctaveScale = scale
	}
}

// WithPersistence sets the amplitude ratio between successive octaves.
func WithPersistence(persistence float64) Option {
	return func(s *settings) {
		s.cfg.Persistence = persistence
	}
}

// WithInterpolation installs a custom kernel. A nil kernel keeps the named one.
func WithInterpolation(fn Interpolator) Option {
	return func(s *settings) {
		s.interp = fn
	}
}

func WithInterpolationName(name string) Option {
	return func(s *settings) {
		s.cfg.Interpolation = name
	}
}

// WithHashedLattice derives lattice values from a hash of seed and
// coordinates instead of memoized draws.
func WithHashedLattice() Option {
	return func(s *settings) {
		s.cfg.Lattice = LatticeHashed
	}
}

// WithSource feeds the memoized lattice from src instead of a seeded generator.
// The seed is ignored.
func WithSource(src rng.Source) Option {
	return func(s *settings) {
		s.src = src
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) (settings, error) {
	s := settings{
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	err := s.cfg.Validate()
	if s.src != nil && s.cfg.Lattice == LatticeHashed {
		err = multierr.Append(err, invalid("a random source cannot drive a hashed lattice"))
	}
	if err != nil {
		return settings{}, err
	}
	if s.interp == nil {
		s.interp, _ = InterpolatorByName(s.cfg.Interpolation)
	}
	return s, nil
}
