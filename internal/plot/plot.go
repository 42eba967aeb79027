// SPDX-License-Identifier: EPL-2.0

// Package plot draws feature tracks as PNG line charts.
package plot

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/dinesh-batta/AaltoASR/feature"
)

var (
	ErrTooFewFrames = errors.New("at least two frames are needed to plot")
	ErrDimension    = errors.New("dimension out of range")
)

// Options control the chart. Zero values select defaults.
type Options struct {
	Title  string
	Dims   []int // feature dimensions to draw, default {0}
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if len(o.Dims) == 0 {
		o.Dims = []int{0}
	}
	if o.Width <= 0 {
		o.Width = 1200
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	return o
}

// Render draws one line per selected dimension against the frame index and
// writes the PNG to w. firstFrame is the index of frames[0].
func Render(w io.Writer, frames []feature.Vec, firstFrame int, opts Options) error {
	opts = opts.withDefaults()
	if len(frames) < 2 {
		return ErrTooFewFrames
	}

	xs := make([]float64, len(frames))
	for i := range xs {
		xs[i] = float64(firstFrame + i)
	}

	series := make([]chart.Series, 0, len(opts.Dims))
	for _, d := range opts.Dims {
		ys := make([]float64, len(frames))
		for i, v := range frames {
			if d < 0 || d >= len(v) {
				return fmt.Errorf("%w: %d of %d", ErrDimension, d, len(v))
			}
			ys[i] = v[d]
		}
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("dim %d", d),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: 1.5,
			},
		})
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		XAxis: chart.XAxis{
			Name: "Frame",
		},
		YAxis: chart.YAxis{
			Name: "Value",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.LegendThin(&graph),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
