// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"fmt"

	"github.com/dinesh-batta/AaltoASR/audio"
	"github.com/dinesh-batta/AaltoASR/formats"
)

// bufferChunk is the number of samples pulled from the decoder per read.
const bufferChunk = 8192

type staticFrame struct {
	vec     Vec
	pastEnd bool
}

// FbankGenerator computes filterbank or cepstral features from an audio
// source. Frame f covers samples [f*HopSize, f*HopSize+WindowSize).
type FbankGenerator struct {
	cfg Config
	ext *extractor
	buf *audio.Buffer
	tr  Transform
	eof bool

	samples []float64
	// static features of recently used frames, shared by the delta windows
	cache map[int]staticFrame
}

// NewGenerator validates cfg and returns a generator without audio.
func NewGenerator(cfg Config) (*FbankGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FbankGenerator{
		cfg:     cfg,
		ext:     newExtractor(cfg),
		samples: make([]float64, cfg.WindowSize+1),
		cache:   make(map[int]staticFrame),
	}, nil
}

// Open attaches src, mixing it to mono and resampling it to the configured
// rate as needed. Any previously opened audio is closed.
func (g *FbankGenerator) Open(src audio.Source) error {
	if err := g.Close(); err != nil {
		return err
	}

	var mono audio.Source = audio.NewMonoMixer(src)
	if mono.SampleRate() != g.cfg.SampleRate {
		var rs audio.Source
		var err error
		if g.cfg.Resampler == ResamplerFilter {
			rs, err = audio.NewFilterResampler(mono, g.cfg.SampleRate)
		} else {
			rs, err = audio.NewResampler(mono, g.cfg.SampleRate)
		}
		if err != nil {
			return fmt.Errorf("resample %d Hz audio: %w", src.SampleRate(), err)
		}
		mono = rs
	}

	buf, err := audio.NewBuffer(mono, bufferChunk)
	if err != nil {
		return fmt.Errorf("buffer audio: %w", err)
	}
	g.buf = buf
	g.eof = false
	clear(g.cache)
	return nil
}

// OpenFile decodes the audio file at path using Config.AudioFormat.
func (g *FbankGenerator) OpenFile(path string) error {
	src, err := formats.Open(path, g.cfg.AudioFormat, g.cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("open audio: %w", err)
	}
	if err := g.Open(src); err != nil {
		src.Close()
		return err
	}
	return nil
}

// Close releases the audio source. It is safe to call more than once.
func (g *FbankGenerator) Close() error {
	if g.buf == nil {
		return nil
	}
	buf := g.buf
	g.buf = nil
	return buf.Close()
}

func (g *FbankGenerator) Config() Config { return g.cfg }

// SetTransform installs t on the static features; nil removes it.
func (g *FbankGenerator) SetTransform(t Transform) {
	g.tr = t
	clear(g.cache)
}

func (g *FbankGenerator) BaseDim() int { return g.cfg.BaseDim() }

func (g *FbankGenerator) Dim() int { return g.cfg.Dim() }

func (g *FbankGenerator) EOF() bool { return g.eof }

func (g *FbankGenerator) Generate(frame int) (Vec, error) {
	if g.buf == nil {
		return nil, ErrNotOpen
	}

	cur, err := g.static(frame)
	if err != nil {
		return nil, err
	}

	base := g.cfg.BaseDim()
	out := make(Vec, g.cfg.Dim())
	copy(out, cur.vec)

	if g.cfg.Deltas >= 1 {
		if err := g.delta(frame, out[base:2*base]); err != nil {
			return nil, err
		}
	}
	if g.cfg.Deltas == 2 {
		if err := g.deltaDelta(frame, out[2*base:]); err != nil {
			return nil, err
		}
	}

	g.eof = cur.pastEnd
	g.evict(frame)
	return out, nil
}

func (g *FbankGenerator) static(frame int) (staticFrame, error) {
	if sf, ok := g.cache[frame]; ok {
		return sf, nil
	}

	start := frame*g.cfg.HopSize - 1
	pastEnd, err := g.buf.Window(start, g.samples)
	if err != nil {
		return staticFrame{}, fmt.Errorf("frame %d: %w", frame, err)
	}

	sf := staticFrame{vec: make(Vec, g.cfg.BaseDim()), pastEnd: pastEnd}
	g.ext.compute(g.samples, sf.vec)
	if g.tr != nil {
		g.tr.Apply(sf.vec)
	}
	g.cache[frame] = sf
	return sf, nil
}

// regress computes sum_n n*(at(f+n)-at(f-n)) / (2*sum_n n^2) into dst.
func (g *FbankGenerator) regress(frame int, dst Vec, at func(int, Vec) error) error {
	n := g.cfg.DeltaWindow
	var norm float64
	for k := 1; k <= n; k++ {
		norm += float64(k * k)
	}
	norm *= 2

	clear(dst)
	next := make(Vec, len(dst))
	prev := make(Vec, len(dst))
	for k := 1; k <= n; k++ {
		if err := at(frame+k, next); err != nil {
			return err
		}
		if err := at(frame-k, prev); err != nil {
			return err
		}
		for i := range dst {
			dst[i] += float64(k) * (next[i] - prev[i])
		}
	}
	for i := range dst {
		dst[i] /= norm
	}
	return nil
}

func (g *FbankGenerator) delta(frame int, dst Vec) error {
	return g.regress(frame, dst, func(f int, v Vec) error {
		sf, err := g.static(f)
		if err != nil {
			return err
		}
		copy(v, sf.vec)
		return nil
	})
}

func (g *FbankGenerator) deltaDelta(frame int, dst Vec) error {
	return g.regress(frame, dst, g.delta)
}

// evict drops cached frames that no delta window around frame can reach.
func (g *FbankGenerator) evict(frame int) {
	reach := 2*g.cfg.DeltaWindow + 1
	if len(g.cache) <= 4*reach {
		return
	}
	for f := range g.cache {
		if f < frame-reach || f > frame+reach {
			delete(g.cache, f)
		}
	}
}
