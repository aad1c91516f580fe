package pure

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

type entry[O any] struct {
	keys  []int
	value O
}

// Table memoizes values by integer tuple.
// A stored tuple keeps its value until it is explicitly overwritten;
// nothing is ever evicted. Table is not safe for concurrent use.
type Table[O any] struct {
	buckets map[uint64][]entry[O]
	size    int
	scratch []byte
	hash    func([]byte) uint64
}

func NewTable[O any]() *Table[O] {
	return &Table[O]{
		buckets: make(map[uint64][]entry[O]),
		hash:    xxhash.Sum64,
	}
}

// Len returns the number of distinct tuples stored.
func (t *Table[O]) Len() int {
	return t.size
}

func (t *Table[O]) Load(keys []int) (O, bool) {
	h := t.sum(keys)
	if i := t.find(h, keys); i >= 0 {
		return t.buckets[h][i].value, true
	}
	var zero O
	return zero, false
}

func (t *Table[O]) Store(keys []int, value O) {
	h := t.sum(keys)
	if i := t.find(h, keys); i >= 0 {
		t.buckets[h][i].value = value
		return
	}
	t.insert(h, keys, value)
}

// LoadOrStore returns the value stored for keys. If there is none, fn is
// called once and its result is stored. loaded reports whether the value
// was already present.
func (t *Table[O]) LoadOrStore(keys []int, fn func() O) (value O, loaded bool) {
	h := t.sum(keys)
	if i := t.find(h, keys); i >= 0 {
		return t.buckets[h][i].value, true
	}
	value = fn()
	t.insert(h, keys, value)
	return value, false
}

func (t *Table[O]) insert(h uint64, keys []int, value O) {
	t.buckets[h] = append(t.buckets[h], entry[O]{keys: slices.Clone(keys), value: value})
	t.size++
}

func (t *Table[O]) find(h uint64, keys []int) int {
	for i, e := range t.buckets[h] {
		if slices.Equal(e.keys, keys) {
			return i
		}
	}
	return -1
}

func (t *Table[O]) sum(keys []int) uint64 {
	if len(keys) == 0 {
		panic("pure: empty keys")
	}
	buf := t.scratch[:0]
	for _, k := range keys {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(k))
	}
	t.scratch = buf
	return t.hash(buf)
}
