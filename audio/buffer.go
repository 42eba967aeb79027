// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer gives random access to the samples of a mono Source. Samples are
// pulled from the source only as far as a request needs and are kept for
// the lifetime of the Buffer, so windows may be requested in any order.
type Buffer struct {
	src     Source
	samples []float32
	chunk   []float32
	done    bool
}

// NewBuffer wraps a mono src. chunkSize controls how many samples are read
// per call to the source; values below 1 fall back to 4096.
func NewBuffer(src Source, chunkSize int) (*Buffer, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if chunkSize < 1 {
		chunkSize = 4096
	}
	return &Buffer{
		src:   src,
		chunk: make([]float32, chunkSize),
	}, nil
}

func (b *Buffer) SampleRate() int { return b.src.SampleRate() }

// Len reports the number of samples read so far.
func (b *Buffer) Len() int { return len(b.samples) }

// Done reports whether the source has been read to the end.
func (b *Buffer) Done() bool { return b.done }

func (b *Buffer) fill(upTo int) error {
	for !b.done && len(b.samples) < upTo {
		n, err := b.src.ReadSamples(b.chunk)
		if n > 0 {
			b.samples = append(b.samples, b.chunk[:n]...)
		}
		if err == io.EOF {
			b.done = true
			break
		}
		if err != nil {
			return fmt.Errorf("fill buffer: %w", err)
		}
	}
	return nil
}

// Window copies len(dst) samples starting at start into dst. Positions
// before the first or after the last sample read as zero. pastEnd is true
// when the window extends beyond the end of the source.
func (b *Buffer) Window(start int, dst []float64) (pastEnd bool, err error) {
	end := start + len(dst)
	if err := b.fill(end); err != nil {
		return false, err
	}

	for i := range dst {
		idx := start + i
		if idx < 0 || idx >= len(b.samples) {
			dst[i] = 0
			continue
		}
		dst[i] = float64(b.samples[idx])
	}

	return b.done && end > len(b.samples), nil
}

func (b *Buffer) Close() error {
	if err := b.src.Close(); err != nil {
		return fmt.Errorf("close buffer source: %w", err)
	}
	return nil
}
