// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinesh-batta/AaltoASR/internal/audiotest"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(io.Reader) (Source, error) {
	return audiotest.NewSilentSource(16000, 1, 10), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}
	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	require.True(t, ok)
	assert.Same(t, decoder, got)

	got, ok = registry.Get("WAV")
	require.True(t, ok, "format keys are case insensitive")
	assert.Same(t, decoder, got)

	_, ok = registry.Get("flac")
	assert.False(t, ok)
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	ogg := &stubDecoder{name: "ogg"}
	wav := &stubDecoder{name: "wav"}
	registry.Register("ogg", ogg, ".oga")
	registry.Register("wav", wav, "wave")

	tests := []struct {
		path string
		want Decoder
	}{
		{path: "speech.ogg", want: ogg},
		{path: "/data/speech.OGA", want: ogg},
		{path: "utt01.wave", want: wav},
		{path: "a.b/utt01.wav", want: wav},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := registry.Lookup(tt.path)
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}

	_, err := registry.Lookup("noext")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = registry.Lookup("speech.flac")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				registry.Register("wav", &stubDecoder{})
				return
			}
			registry.Get("wav")
		}()
	}
	wg.Wait()

	_, ok := registry.Get("wav")
	assert.True(t, ok)
}
