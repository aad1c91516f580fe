package lattice

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

var _ Lattice = Hashed{}

// Hashed derives each point's value from a hash of the seed and the
// coordinates. It keeps no state, so values do not depend on the order in
// which points are visited and concurrent reads are safe.
type Hashed struct {
	dims int
	seed uint64
}

func NewHashed(dims int, seed uint64) Hashed {
	if dims < 1 {
		panic("lattice: dimensions should be greater than 0")
	}
	return Hashed{dims: dims, seed: seed}
}

func (h Hashed) ValueAt(coords []int) float64 {
	checkArity(h.dims, coords)
	var d xxhash.Digest
	d.ResetWithSeed(h.seed)
	var buf [8]byte
	for _, c := range coords {
		binary.LittleEndian.PutUint64(buf[:], uint64(c))
		_, _ = d.Write(buf[:])
	}
	return float64(d.Sum64()>>11) / (1 << 53)
}

func (h Hashed) Dimensions() int {
	return h.dims
}
