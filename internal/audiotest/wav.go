// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/dinesh-batta/AaltoASR/utils"
)

// WriteWAV16 writes interleaved 16-bit PCM samples to a WAV file named name
// inside dir and returns its path.
func WriteWAV16(dir, name string, sampleRate, channels int, samples []int16) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return "", fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("close wav: %w", err)
	}
	return path, nil
}

// Sine16 returns n samples of a 16-bit sine at freq Hz.
func Sine16(sampleRate, n int, freq, amplitude float64) []int16 {
	out := make([]int16, n)
	src := NewSineSource(sampleRate, 1, n, freq)
	buf := make([]float32, n)
	got, _ := src.ReadSamples(buf)
	for i := range got {
		out[i] = utils.Float32ToInt16(buf[i] * float32(amplitude))
	}
	return out
}
