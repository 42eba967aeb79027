// SPDX-License-Identifier: EPL-2.0

// Package formats wires the individual decoders into an audio.Registry and
// opens audio files by name.
package formats

import (
	"fmt"
	"os"

	"github.com/dinesh-batta/AaltoASR/audio"
	"github.com/dinesh-batta/AaltoASR/formats/aiff"
	"github.com/dinesh-batta/AaltoASR/formats/mp3"
	"github.com/dinesh-batta/AaltoASR/formats/raw"
	"github.com/dinesh-batta/AaltoASR/formats/vorbis"
	"github.com/dinesh-batta/AaltoASR/formats/wav"
)

// NewRegistry returns a registry with every supported format. rawRate is the
// sample rate assumed for headerless "raw" audio.
func NewRegistry(rawRate int) *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{}, "wave")
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{}, "oga", "vorbis")
	reg.Register("aiff", aiff.Decoder{}, "aif")
	reg.Register("raw", raw.Decoder{SampleRate: rawRate}, "pcm", "s16")
	return reg
}

// fileSource closes the underlying file together with the decoder.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s fileSource) Close() error {
	srcErr := s.Source.Close()
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("close audio file: %w", err)
	}
	return srcErr
}

// Open decodes the file at path. format selects a decoder by key; when empty
// the file extension decides.
func Open(path, format string, rawRate int) (audio.Source, error) {
	reg := NewRegistry(rawRate)

	var (
		dec audio.Decoder
		err error
	)
	if format == "" {
		dec, err = reg.Lookup(path)
	} else {
		var ok bool
		if dec, ok = reg.Get(format); !ok {
			err = audio.ErrUnknownFormat
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio file: %w", err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fileSource{Source: src, f: f}, nil
}
