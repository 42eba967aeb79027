// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved 16-bit stereo, so the returned source
// reports two channels even for mono recordings; mix it down with
// audio.NewMonoMixer before feature extraction.
//
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
