// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/dinesh-batta/AaltoASR/utils"
)

// filterAlpha is the one-pole low-pass coefficient used when downsampling.
const filterAlpha float32 = 0.5

// Resampler converts a mono Source to another sample rate using Catmull-Rom
// cubic interpolation. A one-pole low-pass filter runs on the input when
// downsampling.
type Resampler struct {
	src     Source
	dstRate int
	step    float64 // source samples per output sample

	// win holds samples i-1, i, i+1, i+2 around the integer source index i.
	win   [4]float32
	ahead int // real (non duplicated) samples in win[1:]
	pos   float64

	srcBuf         []float32
	bufPos, bufLen int
	srcEOF         bool
	started        bool

	lowpass bool
	primed  bool
	state   float32
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if src.Channels() != 1 {
		return nil, ErrNotMono
	}
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, ErrInvalidRate
	}

	step := float64(src.SampleRate()) / float64(dstRate)
	return &Resampler{
		src:     src,
		dstRate: dstRate,
		step:    step,
		srcBuf:  make([]float32, 4096),
		lowpass: step > 1.0,
	}, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return 1 }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("close resampler source: %w", err)
	}
	return nil
}

// pull returns the next (filtered) source sample; ok is false once the
// source is exhausted.
func (r *Resampler) pull() (x float32, ok bool, err error) {
	for r.bufPos >= r.bufLen {
		if r.srcEOF {
			return 0, false, nil
		}
		n, err := r.src.ReadSamples(r.srcBuf)
		r.bufPos, r.bufLen = 0, n
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return 0, false, fmt.Errorf("read resampler source: %w", err)
		}
	}

	x = r.srcBuf[r.bufPos]
	r.bufPos++

	if r.lowpass {
		if !r.primed {
			r.state = x
			r.primed = true
		}
		r.state = filterAlpha*x + (1-filterAlpha)*r.state
		x = r.state
	}
	return x, true, nil
}

func (r *Resampler) start() error {
	r.started = true
	for i := 1; i < len(r.win); i++ {
		x, ok, err := r.pull()
		if err != nil {
			return err
		}
		if !ok {
			if i > 1 {
				r.win[i] = r.win[i-1]
			}
			continue
		}
		r.win[i] = x
		r.ahead++
	}
	r.win[0] = r.win[1]
	return nil
}

// advance moves the window forward by one source sample, duplicating the
// last real sample past the end of the input.
func (r *Resampler) advance() error {
	x, ok, err := r.pull()
	if err != nil {
		return err
	}
	copy(r.win[:3], r.win[1:])
	r.ahead--
	if ok {
		r.win[3] = x
		r.ahead++
	}
	return nil
}

// ReadSamples produces resampled mono samples into dst.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if !r.started {
		if err := r.start(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(dst) {
		for r.pos >= 1.0 && r.ahead > 0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				return n, err
			}
		}
		if r.ahead == 0 {
			break
		}

		dst[n] = utils.CatmullRom(r.win, float32(r.pos))
		n++
		r.pos += r.step
	}

	if n == 0 && r.ahead == 0 {
		return 0, io.EOF
	}
	return n, nil
}
