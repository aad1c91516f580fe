package pure_test

import (
	"testing"

	"github.com/on-the-ground/perlin_ive_go/pure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_BasicUsage(t *testing.T) {
	table := pure.NewTable[string]()

	table.Store([]int{1, 2, 3}, "final")

	val, ok := table.Load([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = table.Load([]int{1, 2, 4})
	assert.False(t, ok)

	// overwrite existing
	table.Store([]int{1, 2, 3}, "updated")
	val, ok = table.Load([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
	assert.Equal(t, 1, table.Len())
}

func TestTable_LoadOrStoreCallsOnce(t *testing.T) {
	table := pure.NewTable[int]()
	count := 0
	fn := func() int {
		count++
		return count * 10
	}

	v, loaded := table.LoadOrStore([]int{-5, 7}, fn)
	assert.False(t, loaded)
	assert.Equal(t, 10, v)

	v, loaded = table.LoadOrStore([]int{-5, 7}, fn)
	assert.True(t, loaded)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, count)

	v, loaded = table.LoadOrStore([]int{7, -5}, fn)
	assert.False(t, loaded)
	assert.Equal(t, 20, v)
	assert.Equal(t, 2, table.Len())
}

func TestTable_KeysAreCopied(t *testing.T) {
	table := pure.NewTable[int]()
	keys := []int{3, 4}
	table.Store(keys, 34)

	keys[0] = 9
	v, ok := table.Load([]int{3, 4})
	require.True(t, ok)
	assert.Equal(t, 34, v)

	_, ok = table.Load(keys)
	assert.False(t, ok)
}

func TestTable_DistinguishesTupleLengths(t *testing.T) {
	table := pure.NewTable[string]()
	table.Store([]int{0}, "one")
	table.Store([]int{0, 0}, "two")

	v, _ := table.Load([]int{0})
	assert.Equal(t, "one", v)
	v, _ = table.Load([]int{0, 0})
	assert.Equal(t, "two", v)
}

func TestTable_ResolvesHashCollisions(t *testing.T) {
	table := pure.WithHash(pure.NewTable[int](), func([]byte) uint64 { return 1 })

	for i := -50; i < 50; i++ {
		table.Store([]int{i, i * 2}, i)
	}
	assert.Equal(t, 100, table.Len())
	for i := -50; i < 50; i++ {
		v, ok := table.Load([]int{i, i * 2})
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	_, ok := table.Load([]int{1, 1})
	assert.False(t, ok)
}

func TestTable_EmptyKeysPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on empty keys, but didn't panic")
		}
	}()
	table := pure.NewTable[int]()
	table.Load([]int{})
}
