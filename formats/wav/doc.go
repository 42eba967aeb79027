// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files through github.com/go-audio/wav.
//
// Integer PCM at 16, 24 or 32 bits is supported, with any channel count and
// sample rate. Chunks other than fmt and data are skipped, so files written
// by recording tools with LIST or fact chunks decode as well.
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The returned audio.Source yields float32 samples in [-1.0, 1.0].
// Non-seekable readers are buffered in memory first.
package wav
