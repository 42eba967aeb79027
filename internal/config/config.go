// SPDX-License-Identifier: EPL-2.0

// Package config collects the options of a feacat run.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	aku "github.com/dinesh-batta/AaltoASR"
	"github.com/dinesh-batta/AaltoASR/featio"
	"github.com/dinesh-batta/AaltoASR/noise"
	"github.com/dinesh-batta/AaltoASR/stream"
)

const (
	DefaultLogLevel = "warning"
	// StdStream names stdout as the output file.
	StdStream = "-"
)

// Options holds every knob of a run.
type Options struct {
	FeatureConfig string // YAML feature configuration, required
	WriteConfig   string // where to write the effective feature configuration
	RawOutput     bool
	Header        bool
	StartFrame    int
	EndFrame      *int // nil runs to the end of the audio
	Speakers      string
	SpeakerID     string
	UtteranceID   string
	GaussianStd   float64
	Seed          uint64
	Output        string
	LogLevel      string
	Audio         string
}

// Defaults returns the options of a run without any flags.
func Defaults() Options {
	return Options{
		Seed:     noise.DefaultSeed,
		Output:   StdStream,
		LogLevel: DefaultLogLevel,
	}
}

func (o Options) Mode() featio.Mode {
	if o.RawOutput {
		return featio.Raw
	}
	return featio.ASCII
}

// Range converts the frame options to a stream range. An end frame of
// math.MaxInt32 or math.MaxInt runs to the end of the audio like a missing
// one does.
func (o Options) Range() stream.Range {
	if o.EndFrame == nil || *o.EndFrame == math.MaxInt32 || *o.EndFrame == math.MaxInt {
		return stream.OpenEnded(o.StartFrame)
	}
	return stream.Bounded(o.StartFrame, *o.EndFrame)
}

// Validate checks o before anything is opened. Problems that do not stop a
// run are returned as warnings; a header request in ASCII mode is dropped.
func (o *Options) Validate() (warnings []string, err error) {
	switch {
	case o.FeatureConfig == "":
		return nil, aku.ConfigError(errors.New("a feature configuration (--config) is required"))
	case o.Audio == "":
		return nil, aku.ConfigError(errors.New("an audio file is required"))
	case o.GaussianStd < 0:
		return nil, aku.ConfigError(fmt.Errorf("gaussian std must not be negative, got %v", o.GaussianStd))
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return nil, aku.ConfigError(fmt.Errorf("log level: %w", err))
	}

	if o.Header && !o.RawOutput {
		warnings = append(warnings, "header is only written with raw output, ignoring --header")
		o.Header = false
	}
	if o.Speakers == "" && (o.SpeakerID != "" || o.UtteranceID != "") {
		warnings = append(warnings, "speaker and utterance ids need a speaker file (--speakers), ignoring them")
	}
	return warnings, nil
}
