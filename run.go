// SPDX-License-Identifier: EPL-2.0

package aku

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dinesh-batta/AaltoASR/feature"
	"github.com/dinesh-batta/AaltoASR/featio"
	"github.com/dinesh-batta/AaltoASR/internal/logging"
	"github.com/dinesh-batta/AaltoASR/noise"
	"github.com/dinesh-batta/AaltoASR/stream"
)

// Overlay changes the generator before streaming starts.
type Overlay interface {
	Activate() error
}

// RunContext holds everything a single run uses.
type RunContext struct {
	Generator feature.Generator
	Overlay   Overlay // optional
	Range     stream.Range

	// NoiseStd > 0 adds Noise.Draw()*NoiseStd to every value. Noise
	// defaults to a source seeded with noise.DefaultSeed.
	NoiseStd float64
	Noise    *noise.Source

	Encoder featio.Encoder
	Header  bool

	Log logrus.FieldLogger // optional
}

// Stats summarizes a run.
type Stats struct {
	Frames   int
	First    int
	Last     int
	Dim      int
	Duration time.Duration
}

type moder interface {
	Mode() featio.Mode
}

func (rc *RunContext) check() error {
	switch {
	case rc.Generator == nil:
		return ConfigError(errors.New("no feature generator"))
	case rc.Encoder == nil:
		return ConfigError(errors.New("no output encoder"))
	case rc.NoiseStd < 0:
		return ConfigError(fmt.Errorf("negative noise deviation %v", rc.NoiseStd))
	}
	return nil
}

// Run activates the overlay, writes the header when requested and streams
// every frame of rc.Range through the perturbation and the encoder, one
// frame at a time. It stops at the first error.
func Run(rc *RunContext) (Stats, error) {
	if err := rc.check(); err != nil {
		return Stats{}, err
	}

	log := rc.Log
	if log == nil {
		log = logging.Discard()
	}
	if rc.NoiseStd > 0 && rc.Noise == nil {
		rc.Noise = noise.NewSource(noise.DefaultSeed)
	}

	if rc.Overlay != nil {
		if err := rc.Overlay.Activate(); err != nil {
			return Stats{}, ConfigError(fmt.Errorf("activate speaker overlay: %w", err))
		}
	}

	stats := Stats{Dim: rc.Generator.Dim()}
	if rc.Header {
		if m, ok := rc.Encoder.(moder); ok && m.Mode() != featio.Raw {
			log.Warn("header is only written in raw mode, ignoring")
		}
		if err := rc.Encoder.WriteHeader(stats.Dim); err != nil {
			return stats, fmt.Errorf("write header: %w", err)
		}
	}

	log.WithFields(logrus.Fields{
		"range":     rc.Range.String(),
		"dim":       stats.Dim,
		"noise_std": rc.NoiseStd,
	}).Debug("streaming features")

	start := time.Now()
	for fr, err := range stream.New(rc.Generator).Frames(rc.Range) {
		if err != nil {
			return stats, err
		}
		if rc.NoiseStd > 0 {
			rc.Noise.Perturb(fr.Vec, rc.NoiseStd)
		}
		if err := rc.Encoder.Encode(fr.Vec); err != nil {
			return stats, err
		}

		if stats.Frames == 0 {
			stats.First = fr.Index
		}
		stats.Last = fr.Index
		stats.Frames++
	}
	stats.Duration = time.Since(start)

	log.WithFields(logrus.Fields{
		"frames":   stats.Frames,
		"first":    stats.First,
		"last":     stats.Last,
		"duration": stats.Duration,
	}).Info("features written")
	return stats, nil
}
