// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes integer PCM AIFF files (8 to 32 bits) through
// github.com/go-audio/aiff.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
