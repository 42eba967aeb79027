// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams through
// github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Decoded samples are already float32 in [-1.0, 1.0] and are passed through
// unchanged. Reads must be sized in whole frames (a multiple of Channels()).
package vorbis
