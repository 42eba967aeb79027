// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/dinesh-batta/AaltoASR/feature"
)

func TestSource_SameSeedSameDraws(t *testing.T) {
	t.Parallel()

	a, b := NewSource(12345), NewSource(12345)
	for range 1000 {
		require.Equal(t, a.Draw(), b.Draw())
	}
}

func TestSource_SeedsDiffer(t *testing.T) {
	t.Parallel()

	a, b := NewSource(1), NewSource(2)
	same := 0
	for range 100 {
		if a.Draw() == b.Draw() {
			same++
		}
	}
	assert.Less(t, same, 100)
}

func TestSource_StandardNormal(t *testing.T) {
	t.Parallel()

	src := NewSource(DefaultSeed)
	xs := make([]float64, 50000)
	for i := range xs {
		xs[i] = src.Draw()
	}

	mean, std := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0, mean, 0.02)
	assert.InDelta(t, 1, std, 0.02)
}

func TestPerturb_ScalesDrawsInDimensionOrder(t *testing.T) {
	t.Parallel()

	src, ref := NewSource(7), NewSource(7)
	v := feature.Vec{1, -2.5, 0, 10}
	orig := v.Clone()

	src.Perturb(v, 0.5)
	for i := range v {
		assert.Equal(t, orig[i]+ref.Draw()*0.5, v[i])
	}

	// the next frame continues the same stream
	w := feature.Vec{0}
	src.Perturb(w, 1)
	assert.Equal(t, ref.Draw(), w[0])
}

func TestPerturb_NonPositiveStdSkips(t *testing.T) {
	t.Parallel()

	for _, std := range []float64{0, -1} {
		src, ref := NewSource(99), NewSource(99)
		v := feature.Vec{1, 2, 3}

		src.Perturb(v, std)
		assert.Equal(t, feature.Vec{1, 2, 3}, v)
		assert.Equal(t, ref.Draw(), src.Draw(), "std %v must not consume draws", std)
	}
}

func TestPerturb_NoiseDistribution(t *testing.T) {
	t.Parallel()

	const std = 0.25
	src := NewSource(DefaultSeed)
	deltas := make([]float64, 0, 40000)
	for range 10000 {
		v := feature.Vec{3, 3, 3, 3}
		src.Perturb(v, std)
		for _, x := range v {
			deltas = append(deltas, x-3)
		}
	}

	mean, got := stat.MeanStdDev(deltas, nil)
	assert.InDelta(t, 0, mean, 0.01)
	assert.InDelta(t, std, got, 0.01)
	assert.False(t, math.IsNaN(got))
}
