// SPDX-License-Identifier: EPL-2.0

// Package featio reads and writes feature vector streams.
//
// Raw streams are concatenated native-endian float32 values, optionally
// preceded by a native-endian int32 holding the vector dimension. ASCII
// streams hold one frame per line, each value printed as %8.4f followed by
// a space.
package featio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/dinesh-batta/AaltoASR/feature"
)

// Mode selects the output encoding.
type Mode int

const (
	Raw Mode = iota
	ASCII
)

func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case ASCII:
		return "ascii"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Encoder serializes feature vectors to a sink.
type Encoder interface {
	// WriteHeader writes the stream header. It must precede the first
	// frame and may be called once.
	WriteHeader(dim int) error
	Encode(v feature.Vec) error
}

// StreamEncoder writes each frame with a single Write call on the
// underlying writer.
type StreamEncoder struct {
	w      io.Writer
	mode   Mode
	header bool
	frames int
	buf    []byte
}

func NewEncoder(w io.Writer, mode Mode) *StreamEncoder {
	return &StreamEncoder{w: w, mode: mode}
}

func (e *StreamEncoder) Mode() Mode { return e.mode }

// Frames reports the number of frames encoded so far.
func (e *StreamEncoder) Frames() int { return e.frames }

// WriteHeader writes dim as a native-endian int32 in Raw mode. ASCII streams
// carry no header and nothing is written.
func (e *StreamEncoder) WriteHeader(dim int) error {
	if e.header || e.frames > 0 {
		return ErrHeaderWritten
	}
	if dim < 1 || dim > math.MaxInt32 {
		return fmt.Errorf("%w: %d", ErrInvalidDim, dim)
	}
	e.header = true
	if e.mode != Raw {
		return nil
	}

	e.buf = binary.NativeEndian.AppendUint32(e.buf[:0], uint32(int32(dim)))
	return e.write()
}

func (e *StreamEncoder) Encode(v feature.Vec) error {
	e.buf = e.buf[:0]
	switch e.mode {
	case Raw:
		for _, x := range v {
			e.buf = binary.NativeEndian.AppendUint32(e.buf, math.Float32bits(float32(x)))
		}
	case ASCII:
		for _, x := range v {
			e.buf = fmt.Appendf(e.buf, "%8.4f ", x)
		}
		e.buf = append(e.buf, '\n')
	default:
		return fmt.Errorf("encode: unknown %v", e.mode)
	}

	if err := e.write(); err != nil {
		return fmt.Errorf("frame %d: %w", e.frames, err)
	}
	e.frames++
	return nil
}

func (e *StreamEncoder) write() error {
	n, err := e.w.Write(e.buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if n != len(e.buf) {
		return fmt.Errorf("%w: %w (%d of %d bytes)", ErrWrite, io.ErrShortWrite, n, len(e.buf))
	}
	return nil
}
