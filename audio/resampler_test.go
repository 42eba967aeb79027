// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesh-batta/AaltoASR/internal/audiotest"
)

func readAll(t *testing.T, src Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 333)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
	}
}

func TestResampler_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewResampler(audiotest.NewSilentSource(8000, 2, 10), 16000)
	assert.ErrorIs(t, err, ErrNotMono)

	_, err = NewResampler(audiotest.NewSilentSource(8000, 1, 10), 0)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestResampler_SameRateIsIdentity(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewRampSource(16000, 1, 500, 0.001), 16000)
	require.NoError(t, err)
	assert.Equal(t, 16000, r.SampleRate())
	assert.Equal(t, 1, r.Channels())

	out := readAll(t, r)
	require.Len(t, out, 500)
	for i, v := range out {
		assert.InDelta(t, float32(i)*0.001, v, 1e-6, "sample %d", i)
	}
}

func TestResampler_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
		samples int
		want    int
	}{
		{name: "downsample by two", srcRate: 16000, dstRate: 8000, samples: 16000, want: 8000},
		{name: "upsample by two", srcRate: 8000, dstRate: 16000, samples: 100, want: 200},
		{name: "44.1k to 16k", srcRate: 44100, dstRate: 16000, samples: 44100, want: 16000},
		{name: "single sample", srcRate: 8000, dstRate: 8000, samples: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := NewResampler(audiotest.NewSineSource(tt.srcRate, 1, tt.samples, 440), tt.dstRate)
			require.NoError(t, err)

			out := readAll(t, r)
			assert.InDelta(t, tt.want, len(out), 1)
			for _, v := range out {
				assert.LessOrEqual(t, v, float32(1.5))
				assert.GreaterOrEqual(t, v, float32(-1.5))
			}
		})
	}
}

func TestResampler_ConstantSignalStaysConstant(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewConstantSource(48000, 1, 4800, 0.5), 16000)
	require.NoError(t, err)

	for _, v := range readAll(t, r) {
		assert.InDelta(t, 0.5, v, 1e-5)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r, err := NewResampler(audiotest.NewSilentSource(8000, 1, 0), 16000)
	require.NoError(t, err)

	n, err := r.ReadSamples(make([]float32, 16))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestResampler_PropagatesSourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r, err := NewResampler(audiotest.FailingSource{Rate: 8000, Err: boom}, 16000)
	require.NoError(t, err)

	_, err = r.ReadSamples(make([]float32, 16))
	assert.ErrorIs(t, err, boom)
}
