// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	resampling "github.com/tphakala/go-audio-resampling"
)

// FilterResampler converts a mono Source to another sample rate with the
// polyphase filter of github.com/tphakala/go-audio-resampling. It is slower
// than Resampler but free of aliasing. The filter delay is not flushed, so
// the output may end a few milliseconds early.
type FilterResampler struct {
	src     Source
	rs      resampling.Resampler
	dstRate int

	in      []float32
	in64    []float64
	pending []float64
	srcEOF  bool
}

func NewFilterResampler(src Source, dstRate int) (*FilterResampler, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(src.SampleRate()),
		OutputRate: float64(dstRate),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("create filter resampler: %w", err)
	}

	return &FilterResampler{
		src:     src,
		rs:      rs,
		dstRate: dstRate,
		in:      make([]float32, 4096),
		in64:    make([]float64, 4096),
	}, nil
}

func (r *FilterResampler) SampleRate() int { return r.dstRate }
func (r *FilterResampler) Channels() int   { return 1 }

func (r *FilterResampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resampler source: %w", err)
	}
	return nil
}

func (r *FilterResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	for len(r.pending) == 0 {
		if r.srcEOF {
			return 0, io.EOF
		}

		n, err := r.src.ReadSamples(r.in)
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return 0, fmt.Errorf("read resampler source: %w", err)
		}
		if n == 0 {
			continue
		}

		for i, x := range r.in[:n] {
			r.in64[i] = float64(x)
		}
		out, err := r.rs.Process(r.in64[:n])
		if err != nil {
			return 0, fmt.Errorf("resample: %w", err)
		}
		r.pending = append(r.pending, out...)
	}

	n := min(len(dst), len(r.pending))
	for i := range n {
		dst[i] = float32(r.pending[i])
	}
	r.pending = r.pending[n:]
	return n, nil
}
