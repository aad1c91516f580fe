package perlin

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// MaxDimensions bounds N; every sample visits 2^N lattice points per octave.
const MaxDimensions = 20

const (
	LatticeMemo   = "memo"
	LatticeHashed = "hashed"
)

// Config is the declarative form of a field's parameters.
type Config struct {
	// Seed selects the lattice. Decimal integers are used as is, other
	// text is hashed, and an empty seed picks a random one.
	Seed        string  `yaml:"seed"`
	Dimensions  int     `yaml:"dimensions"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Wavelength  float64 `yaml:"wavelength"`
	Octaves     int     `yaml:"octaves"`
	OctaveScale float64 `yaml:"octave_scale"`
	Persistence float64 `yaml:"persistence"`
	// Interpolation names a built-in kernel: cosine, linear, smoothstep or smootherstep.
	Interpolation string `yaml:"interpolation"`
	// Lattice is either "memo" or "hashed".
	Lattice string `yaml:"lattice"`
}

func DefaultConfig() Config {
	return Config{
		Dimensions:    2,
		Min:           0,
		Max:           1,
		Wavelength:    1,
		Octaves:       8,
		OctaveScale:   0.5,
		Persistence:   0.5,
		Interpolation: InterpolationCosine,
		Lattice:       LatticeMemo,
	}
}

// Validate reports every invalid parameter at once.
func (c Config) Validate() error {
	var err error
	if c.Dimensions < 1 || c.Dimensions > MaxDimensions {
		err = multierr.Append(err, invalid("dimensions must be in [1, %d], got %d", MaxDimensions, c.Dimensions))
	}
	if !isFinite(c.Min) || !isFinite(c.Max) {
		err = multierr.Append(err, invalid("range bounds must be finite, got [%v, %v)", c.Min, c.Max))
	} else if c.Max < c.Min {
		err = multierr.Append(err, invalid("max %v is below min %v", c.Max, c.Min))
	}
	if !isPositive(c.Wavelength) {
		err = multierr.Append(err, invalid("wavelength must be positive, got %v", c.Wavelength))
	}
	if c.Octaves < 1 {
		err = multierr.Append(err, invalid("octaves must be at least 1, got %d", c.Octaves))
	}
	if !isPositive(c.OctaveScale) {
		err = multierr.Append(err, invalid("octave scale must be positive, got %v", c.OctaveScale))
	} else if c.Octaves >= 1 && !isFinite(topFrequency(c.OctaveScale, c.Octaves)) {
		err = multierr.Append(err, invalid("octave scale %v over %d octaves overflows the frequency", c.OctaveScale, c.Octaves))
	}
	if !isPositive(c.Persistence) {
		err = multierr.Append(err, invalid("persistence must be positive, got %v", c.Persistence))
	} else if c.Octaves >= 1 && isFinite(c.Min) && isFinite(c.Max) && c.Max > c.Min {
		if fac, _ := normalization(c.Min, c.Max, c.Persistence, c.Octaves); !isPositive(fac) {
			err = multierr.Append(err, invalid("persistence %v over %d octaves has no finite normalization", c.Persistence, c.Octaves))
		}
	}
	if _, ok := InterpolatorByName(c.Interpolation); !ok {
		err = multierr.Append(err, invalid("unknown interpolation %q", c.Interpolation))
	}
	switch c.Lattice {
	case "", LatticeMemo, LatticeHashed:
	default:
		err = multierr.Append(err, invalid("unknown lattice %q", c.Lattice))
	}
	return err
}

// LoadConfig reads a YAML file. Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes YAML over DefaultConfig. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// persistenceEpsilon is how close to 1 persistence must be before the
// geometric series is replaced by its limit.
const persistenceEpsilon = 1e-9

// normalization returns the factor mapping a weighted octave sum onto
// the width of the output range.
//
//	amp = sum_{i=0}^{oct-1} per^i = (per^oct-1)/(per-1)
//	fac = (hi-lo)/amp
//
// At per == 1 the closed form is 0/0 and amp is simply oct.
func normalization(lo, hi, per float64, oct int) (fac float64, flat bool) {
	if math.Abs(per-1) < persistenceEpsilon {
		return (hi - lo) / float64(oct), true
	}
	return (hi - lo) * (per - 1) / (math.Pow(per, float64(oct)) - 1), false
}

// topFrequency is the frequency multiplier of the last octave.
func topFrequency(scale float64, oct int) float64 {
	return math.Pow(1/scale, float64(oct-1))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
