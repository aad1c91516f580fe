package perlin_test

import (
	"testing"

	"github.com/on-the-ground/perlin_ive_go/perlin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolators_Endpoints(t *testing.T) {
	for _, name := range []string{
		perlin.InterpolationCosine,
		perlin.InterpolationLinear,
		perlin.InterpolationSmoothstep,
		perlin.InterpolationSmootherstep,
	} {
		t.Run(name, func(t *testing.T) {
			fn, ok := perlin.InterpolatorByName(name)
			require.True(t, ok)

			assert.Equal(t, 2.0, fn(2, 6, 0))
			assert.InDelta(t, 4.0, fn(2, 6, 0.5), 1e-12)
			assert.InDelta(t, 6.0, fn(2, 6, 1-1e-12), 1e-9)

			prev := fn(2, 6, 0)
			for i := 1; i < 100; i++ {
				v := fn(2, 6, float64(i)/100)
				require.GreaterOrEqual(t, v, prev)
				prev = v
			}
		})
	}
}

func TestCosine_FlatAtCellBoundaries(t *testing.T) {
	const h = 1e-6
	start := (perlin.Cosine(0, 1, h) - perlin.Cosine(0, 1, 0)) / h
	end := (perlin.Cosine(0, 1, 1) - perlin.Cosine(0, 1, 1-h)) / h
	assert.InDelta(t, 0, start, 1e-5)
	assert.InDelta(t, 0, end, 1e-5)
}

func TestInterpolatorByName(t *testing.T) {
	fn, ok := perlin.InterpolatorByName("")
	require.True(t, ok)
	assert.Equal(t, perlin.Cosine(1, 3, 0.3), fn(1, 3, 0.3))

	_, ok = perlin.InterpolatorByName("bicubic")
	assert.False(t, ok)
}
