// SPDX-License-Identifier: EPL-2.0

// Package stream walks a feature generator over a range of frames.
package stream

import (
	"fmt"
	"iter"
	"math"

	"github.com/dinesh-batta/AaltoASR/feature"
)

// Range selects frames Start..End inclusive. A nil End runs forward until
// the generator reports the end of its input.
type Range struct {
	Start int
	End   *int
}

// Bounded returns the inclusive range start..end. Traversal is backward when
// start > end.
func Bounded(start, end int) Range { return Range{Start: start, End: &end} }

// OpenEnded returns the range from start to the end of the input.
func OpenEnded(start int) Range { return Range{Start: start} }

// Forward reports whether frames are visited in increasing order.
func (r Range) Forward() bool { return r.End == nil || r.Start <= *r.End }

func (r Range) String() string {
	if r.End == nil {
		return fmt.Sprintf("%d..", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, *r.End)
}

// Frame is one generated vector and its index.
type Frame struct {
	Index int
	Vec   feature.Vec
}

// Streamer pulls frames from a generator.
type Streamer struct {
	gen feature.Generator
}

func New(gen feature.Generator) *Streamer {
	return &Streamer{gen: gen}
}

// Frames yields the frames of r in traversal order.
//
// Open-ended ranges stop after the first frame for which the generator
// reports EOF; that frame is still yielded. Bounded ranges never consult EOF
// and may read past the end of the input. A generator error is yielded once
// and ends the sequence. No range goes beyond math.MaxInt.
func (s *Streamer) Frames(r Range) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		step := 1
		if !r.Forward() {
			step = -1
		}

		for f := r.Start; ; f += step {
			v, err := s.gen.Generate(f)
			if err != nil {
				yield(Frame{}, fmt.Errorf("generate frame %d: %w", f, err))
				return
			}
			last := r.End == nil && s.gen.EOF()
			if !yield(Frame{Index: f, Vec: v}, nil) || last {
				return
			}
			if r.End != nil && f == *r.End {
				return
			}
			if f == math.MaxInt {
				return
			}
		}
	}
}
