// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// extractor computes the static features of a single frame. It owns its
// scratch buffers and is not safe for concurrent use.
type extractor struct {
	cfg    Config
	window []float64
	bank   [][]float64
	fft    *fourier.FFT
	dct    *fourier.QuarterWaveFFT

	frame  []float64
	coeffs []complex128
	mel    []float64
	ceps   []float64
}

func newExtractor(cfg Config) *extractor {
	n := cfg.fftSize()
	e := &extractor{
		cfg:    cfg,
		window: hammingWindow(cfg.WindowSize),
		bank:   melBank(cfg.NumMels, n, cfg.SampleRate, cfg.LowFreq, cfg.highFreq()),
		fft:    fourier.NewFFT(n),
		frame:  make([]float64, n),
		coeffs: make([]complex128, n/2+1),
		mel:    make([]float64, cfg.NumMels),
	}
	if cfg.NumCeps > 0 {
		e.dct = fourier.NewQuarterWaveFFT(cfg.NumMels)
		e.ceps = make([]float64, cfg.NumMels)
	}
	return e
}

// compute writes BaseDim features into dst. samples holds WindowSize+1
// values: the sample preceding the frame followed by the frame itself.
func (e *extractor) compute(samples []float64, dst Vec) {
	cfg := e.cfg

	for i := range cfg.WindowSize {
		e.frame[i] = (samples[i+1] - cfg.PreEmphasis*samples[i]) * e.window[i]
	}
	clear(e.frame[cfg.WindowSize:])

	e.fft.Coefficients(e.coeffs, e.frame)

	for m, filter := range e.bank {
		var sum float64
		for k, c := range e.coeffs {
			if filter[k] == 0 {
				continue
			}
			sum += filter[k] * (real(c)*real(c) + imag(c)*imag(c))
		}
		e.mel[m] = math.Log(max(sum, cfg.PowerFloor))
	}

	if e.dct == nil {
		copy(dst, e.mel)
		return
	}
	e.dct.CosCoefficients(e.ceps, e.mel)
	copy(dst, e.ceps[:cfg.NumCeps])
}
