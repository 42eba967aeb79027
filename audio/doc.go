// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level plumbing in front of feature
// extraction.
//
// It contains:
//   - the Source interface implemented by every decoder and processor
//   - a format Registry that maps format keys and file extensions to decoders
//   - MonoMixer for channel mixing
//   - Resampler for sample rate conversion of mono audio
//   - FilterResampler, a slower polyphase alternative to Resampler
//   - Buffer for random access to a decoded stream
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. A source signals the
// end of its data with io.EOF.
//
// # Building a Mono Stream
//
// Feature extraction runs on mono audio at a fixed rate. Mix first, then
// resample, then wrap the result in a Buffer:
//
//	mono := audio.NewMonoMixer(src)
//	res, err := audio.NewResampler(mono, 16000)
//	buf, err := audio.NewBuffer(res, 4096)
//
//	window := make([]float64, 400)
//	pastEnd, err := buf.Window(160*frame, window)
//
// Buffer reads from its source lazily and keeps every sample it has seen, so
// windows can be requested in any order (forward or backward traversal).
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("ogg", vorbis.Decoder{}, "oga")
//	decoder, err := registry.Lookup("speech.oga")
package audio
