// SPDX-License-Identifier: EPL-2.0

// Package raw decodes headerless 16-bit little-endian mono PCM. The sample
// rate is not stored in the data and must be supplied by the caller.
package raw

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dinesh-batta/AaltoASR/audio"
	"github.com/dinesh-batta/AaltoASR/utils"
)

var ErrNoSampleRate = errors.New("raw audio needs a sample rate")

type source struct {
	r    *bufio.Reader
	rate int
	buf  []byte
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return 1 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	want := len(dst) * 2
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.r, s.buf)
	switch {
	case err == io.ErrUnexpectedEOF:
		err = io.EOF
	case err != nil && err != io.EOF:
		return 0, fmt.Errorf("read raw audio: %w", err)
	}

	// a trailing odd byte is dropped
	samples := n / 2
	for i := range samples {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(s.buf[2*i:])))
	}
	return samples, err
}

// Decoder reads raw PCM at SampleRate Hz.
type Decoder struct {
	SampleRate int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SampleRate <= 0 {
		return nil, ErrNoSampleRate
	}
	return &source{
		r:    bufio.NewReader(r),
		rate: d.SampleRate,
	}, nil
}
