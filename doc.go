// SPDX-License-Identifier: EPL-2.0

// Package aku streams acoustic feature vectors from a generator to a sink.
//
// A run walks a frame range of a feature.Generator, optionally adds
// Gaussian noise to every vector and writes each frame in raw or ASCII
// form. Everything a run needs is carried by a RunContext; there is no
// package level state.
//
// # Pipeline
//
//	gen, _ := feature.NewGenerator(feature.DefaultConfig())
//	_ = gen.OpenFile("utterance.wav")
//	defer gen.Close()
//
//	rc := &aku.RunContext{
//		Generator: gen,
//		Range:     stream.OpenEnded(0),
//		NoiseStd:  0.1,
//		Noise:     noise.NewSource(noise.DefaultSeed),
//		Encoder:   featio.NewEncoder(os.Stdout, featio.Raw),
//		Header:    true,
//	}
//	stats, err := aku.Run(rc)
//
// # Frame Ranges
//
// An open-ended range runs forward until the generator reports the end of
// its audio; the frame that reached the end is still written. A bounded
// range visits every frame between its ends inclusive, backward when the
// start is larger, and does not stop at the end of the audio.
//
// # Speaker Overlays
//
// A RunContext may carry an Overlay (see the speaker package). It is
// activated once, before the first frame is generated.
//
// # Errors
//
// Configuration problems satisfy errors.Is(err, ErrConfig); failed writes
// satisfy errors.Is(err, featio.ErrWrite). Generator errors are returned
// wrapped with the frame index.
package aku
