package lattice

import (
	"github.com/on-the-ground/perlin_ive_go/pure"
	"github.com/on-the-ground/perlin_ive_go/rng"
	"go.uber.org/zap"
)

var _ Lattice = (*Store)(nil)

// Store populates the lattice lazily from a uniform source.
// The first lookup of a point consumes one draw; later lookups return the
// memoized value. Memory grows with the number of distinct points touched.
// Store is not safe for concurrent use.
type Store struct {
	dims   int
	src    rng.Source
	table  *pure.Table[float64]
	logger *zap.Logger
	next   int
}

type Option func(*Store)

// WithLogger reports store growth at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(dims int, src rng.Source, opts ...Option) *Store {
	if dims < 1 {
		panic("lattice: dimensions should be greater than 0")
	}
	if src == nil {
		panic("lattice: nil source")
	}
	s := &Store{
		dims:   dims,
		src:    src,
		table:  pure.NewTable[float64](),
		logger: zap.NewNop(),
		next:   1024,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ValueAt(coords []int) float64 {
	checkArity(s.dims, coords)
	v, loaded := s.table.LoadOrStore(coords, s.src.Float64)
	if !loaded && s.table.Len() >= s.next {
		if ce := s.logger.Check(zap.DebugLevel, "lattice grown"); ce != nil {
			ce.Write(zap.Int("points", s.table.Len()), zap.Int("dimensions", s.dims))
		}
		s.next *= 2
	}
	return v
}

// Len returns the number of lattice points generated so far.
func (s *Store) Len() int {
	return s.table.Len()
}

func (s *Store) Dimensions() int {
	return s.dims
}
