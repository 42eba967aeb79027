// SPDX-License-Identifier: EPL-2.0

package featio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/dinesh-batta/AaltoASR/feature"
)

// ReadHeader reads the int32 dimension that starts a raw stream written
// with a header.
func ReadHeader(r io.Reader) (int, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	dim := int(int32(binary.NativeEndian.Uint32(b[:])))
	if dim < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDim, dim)
	}
	return dim, nil
}

// RawReader decodes consecutive raw frames of a fixed dimension.
type RawReader struct {
	r   io.Reader
	dim int
	buf []byte
}

func NewRawReader(r io.Reader, dim int) (*RawReader, error) {
	if dim < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDim, dim)
	}
	return &RawReader{r: r, dim: dim, buf: make([]byte, 4*dim)}, nil
}

func (rr *RawReader) Dim() int { return rr.dim }

// Next returns the next frame. It returns io.EOF when the stream ends
// between frames and ErrTruncated when it ends inside one.
func (rr *RawReader) Next() (feature.Vec, error) {
	_, err := io.ReadFull(rr.r, rr.buf)
	switch {
	case errors.Is(err, io.EOF):
		return nil, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, ErrTruncated
	case err != nil:
		return nil, fmt.Errorf("read frame: %w", err)
	}

	v := make(feature.Vec, rr.dim)
	for i := range v {
		v[i] = float64(math.Float32frombits(binary.NativeEndian.Uint32(rr.buf[4*i:])))
	}
	return v, nil
}

// ReadAll returns every remaining frame.
func (rr *RawReader) ReadAll() ([]feature.Vec, error) {
	var frames []feature.Vec
	for {
		v, err := rr.Next()
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, v)
	}
}
