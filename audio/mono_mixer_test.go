// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesh-batta/AaltoASR/internal/audiotest"
)

func TestMonoMixer_Passthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 10, 0.1)
	mono := NewMonoMixer(src)

	buf := make([]float32, 16)
	n, err := mono.ReadSamples(buf)
	assert.Equal(t, io.EOF, err)
	require.Equal(t, 10, n)
	assert.InDelta(t, 0.9, buf[9], 1e-6)
}

func TestMonoMixer_Average(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		want     float32
	}{
		{name: "stereo", channels: 2, want: 0.25},
		{name: "quad", channels: 4, want: 0.375},
		{name: "5.1", channels: 6, want: 0.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// channel c carries c*0.25
			src := audiotest.NewMockSource(16000, tt.channels, 32, func(_ int, ch int) float32 {
				return float32(ch) * 0.25
			})
			mono := NewMonoMixer(src)
			assert.Equal(t, 1, mono.Channels())
			assert.Equal(t, 16000, mono.SampleRate())

			buf := make([]float32, 32)
			n, _ := mono.ReadSamples(buf)
			require.Equal(t, 32, n)
			for i := range n {
				assert.InDelta(t, tt.want, buf[i], 1e-6)
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))
	n, err := mono.ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestMonoMixer_LargeRequestGrowsBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 2, 20000, 0.5)
	mono := NewMonoMixer(src)

	buf := make([]float32, 20000)
	n, err := mono.ReadSamples(buf)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 20000, n)
	assert.InDelta(t, 0.5, buf[19999], 1e-6)
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	require.NoError(t, NewMonoMixer(src).Close())
	assert.True(t, src.Closed)
}
