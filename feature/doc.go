// SPDX-License-Identifier: EPL-2.0

// Package feature turns decoded audio into frame-addressable acoustic
// feature vectors.
//
// A Generator maps a frame index to a Vec. Frames may be requested in any
// order and outside the range of the audio; positions that fall outside the
// signal are treated as silence and EOF reports when the last requested frame
// reached past the end of the input.
//
// FbankGenerator is the concrete front-end: pre-emphasis, Hamming window,
// power spectrum, triangular mel filterbank, log compression and, when
// Config.NumCeps is set, cepstra. Deltas and delta-deltas are appended by
// linear regression over neighbouring frames.
//
// Default parameters:
//
//	SampleRate:  16000
//	WindowSize:  400 (25 ms)
//	HopSize:     160 (10 ms)
//	FFTSize:     512 (next power of two >= WindowSize)
//	NumMels:     26
//	LowFreq:     20
//	HighFreq:    Nyquist
//	PreEmphasis: 0.97
//	NumCeps:     13
package feature
