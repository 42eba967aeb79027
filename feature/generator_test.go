// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesh-batta/AaltoASR/audio"
	"github.com/dinesh-batta/AaltoASR/internal/audiotest"
)

func newTestGenerator(t *testing.T, cfg Config, src audio.Source) *FbankGenerator {
	t.Helper()

	g, err := NewGenerator(cfg)
	require.NoError(t, err)
	require.NoError(t, g.Open(src))
	t.Cleanup(func() { g.Close() })
	return g
}

func TestNewGenerator_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.HopSize = 0
	_, err := NewGenerator(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerator_RequiresAudio(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	_, err = g.Generate(0)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.NoError(t, g.Close())
}

func TestGenerator_Dim(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Deltas = 2
	g := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 440))

	assert.Equal(t, 13, g.BaseDim())
	assert.Equal(t, 39, g.Dim())

	v, err := g.Generate(5)
	require.NoError(t, err)
	require.Len(t, v, 39)
	for i, x := range v {
		assert.False(t, math.IsNaN(x) || math.IsInf(x, 0), "dimension %d is not finite", i)
	}
}

func TestGenerator_EOF(t *testing.T) {
	t.Parallel()

	// 1600 samples: frame 7 ends at 1520, frame 8 would end at 1680
	g := newTestGenerator(t, DefaultConfig(), audiotest.NewConstantSource(16000, 1, 1600, 0.5))

	for f := range 8 {
		_, err := g.Generate(f)
		require.NoError(t, err)
		assert.False(t, g.EOF(), "frame %d", f)
	}

	_, err := g.Generate(8)
	require.NoError(t, err)
	assert.True(t, g.EOF())

	_, err = g.Generate(50)
	require.NoError(t, err)
	assert.True(t, g.EOF(), "frames beyond the audio are still generated")

	_, err = g.Generate(2)
	require.NoError(t, err)
	assert.False(t, g.EOF(), "an earlier frame clears the flag")

	_, err = g.Generate(-3)
	require.NoError(t, err)
	assert.False(t, g.EOF())
}

func TestGenerator_RandomAccessIsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Deltas = 2

	seq := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 300))
	for f := range 40 {
		_, err := seq.Generate(f)
		require.NoError(t, err)
	}
	late, err := seq.Generate(3)
	require.NoError(t, err)

	fresh := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 300))
	want, err := fresh.Generate(3)
	require.NoError(t, err)

	assert.Equal(t, want, late)
}

func TestGenerator_SinePeaksInMatchingBand(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.NumCeps = 0
	g := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 1000))

	v, err := g.Generate(10)
	require.NoError(t, err)

	peak := 0
	for m := range v {
		if v[m] > v[peak] {
			peak = m
		}
	}

	lowMel, highMel := hzToMel(cfg.LowFreq), hzToMel(cfg.highFreq())
	step := (highMel - lowMel) / float64(cfg.NumMels+1)
	center := melToHz(lowMel + float64(peak+1)*step)
	assert.InDelta(t, 1000, center, 200)
}

func TestGenerator_DeltasOfSteadySignalVanish(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Deltas = 2
	g := newTestGenerator(t, cfg, audiotest.NewConstantSource(16000, 1, 16000, 0.5))

	v, err := g.Generate(20)
	require.NoError(t, err)
	for i := g.BaseDim(); i < g.Dim(); i++ {
		assert.InDelta(t, 0, v[i], 1e-12, "dimension %d", i)
	}
}

func TestGenerator_TransformAppliesToStaticFeatures(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Deltas = 1

	plain := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 700))
	shifted := newTestGenerator(t, cfg, audiotest.NewSineSource(16000, 1, 16000, 700))
	shifted.SetTransform(TransformFunc(func(v Vec) {
		for i := range v {
			v[i]++
		}
	}))

	want, err := plain.Generate(12)
	require.NoError(t, err)
	got, err := shifted.Generate(12)
	require.NoError(t, err)

	base := cfg.BaseDim()
	for i := range base {
		assert.InDelta(t, want[i]+1, got[i], 1e-9)
	}
	for i := base; i < cfg.Dim(); i++ {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestGenerator_StereoIsMixedToMono(t *testing.T) {
	t.Parallel()

	mono := newTestGenerator(t, DefaultConfig(), audiotest.NewConstantSource(16000, 1, 4000, 0.25))
	stereo := newTestGenerator(t, DefaultConfig(), audiotest.NewConstantSource(16000, 2, 4000, 0.25))

	want, err := mono.Generate(4)
	require.NoError(t, err)
	got, err := stereo.Generate(4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-9)
}

func TestGenerator_ResamplesToConfiguredRate(t *testing.T) {
	t.Parallel()

	// 100 ms at 8 kHz becomes roughly 1600 samples at 16 kHz
	g := newTestGenerator(t, DefaultConfig(), audiotest.NewSineSource(8000, 1, 800, 440))

	last := -1
	for f := range 20 {
		_, err := g.Generate(f)
		require.NoError(t, err)
		if g.EOF() {
			last = f
			break
		}
	}
	assert.GreaterOrEqual(t, last, 7)
	assert.LessOrEqual(t, last, 9)
}

func TestGenerator_FilterResampler(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Resampler = ResamplerFilter
	g := newTestGenerator(t, cfg, audiotest.NewSineSource(8000, 1, 800, 440))

	last := -1
	for f := range 20 {
		v, err := g.Generate(f)
		require.NoError(t, err)
		require.Len(t, v, cfg.Dim())
		if g.EOF() {
			last = f
			break
		}
	}
	// the filter delay may drop the tail
	assert.GreaterOrEqual(t, last, 4)
	assert.LessOrEqual(t, last, 9)
}

func TestGenerator_OpenFile(t *testing.T) {
	t.Parallel()

	path, err := audiotest.WriteWAV16(t.TempDir(), "tone.wav", 16000, 1, audiotest.Sine16(16000, 4000, 440, 0.5))
	require.NoError(t, err)

	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, g.OpenFile(path))
	defer g.Close()

	frames := 0
	for f := 0; ; f++ {
		_, err := g.Generate(f)
		require.NoError(t, err)
		frames++
		if g.EOF() {
			break
		}
	}
	assert.Equal(t, 24, frames)
}

func TestGenerator_OpenFileErrors(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator(DefaultConfig())
	require.NoError(t, err)

	err = g.OpenFile(filepath.Join(t.TempDir(), "features.xyz"))
	assert.ErrorIs(t, err, audio.ErrUnknownFormat)

	err = g.OpenFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestGenerator_PropagatesReadErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	g := newTestGenerator(t, DefaultConfig(), audiotest.FailingSource{Rate: 16000, Err: errBoom})

	_, err := g.Generate(0)
	assert.ErrorIs(t, err, errBoom)
}

func TestGenerator_CloseReleasesSource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(16000, 1, 1600)
	g := newTestGenerator(t, DefaultConfig(), src)

	require.NoError(t, g.Close())
	assert.True(t, src.Closed)
	assert.NoError(t, g.Close())

	_, err := g.Generate(0)
	assert.ErrorIs(t, err, ErrNotOpen)
}
