// SPDX-License-Identifier: EPL-2.0

package feature

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Resampler names accepted in Config.Resampler.
const (
	ResamplerCubic  = "cubic"
	ResamplerFilter = "filter"
)

// Config controls audio input and feature extraction.
type Config struct {
	SampleRate  int     `yaml:"sample_rate"`  // Hz; audio is resampled to this rate
	AudioFormat string  `yaml:"audio_format"` // decoder key, empty selects by file extension
	Resampler   string  `yaml:"resampler"`    // "cubic" or "filter"
	WindowSize  int     `yaml:"window_size"`  // samples per frame
	HopSize     int     `yaml:"hop_size"`     // samples between frame starts
	FFTSize     int     `yaml:"fft_size"`     // 0 selects the next power of two >= WindowSize
	NumMels     int     `yaml:"num_mels"`
	LowFreq     float64 `yaml:"low_freq"`
	HighFreq    float64 `yaml:"high_freq"` // 0 selects the Nyquist frequency
	PreEmphasis float64 `yaml:"pre_emphasis"`
	NumCeps     int     `yaml:"num_ceps"` // 0 outputs log mel energies
	Deltas      int     `yaml:"deltas"`   // 0, 1 (deltas) or 2 (deltas and delta-deltas)
	DeltaWindow int     `yaml:"delta_window"`
	PowerFloor  float64 `yaml:"power_floor"`
}

// DefaultConfig returns 16 kHz MFCC settings with 25 ms windows every 10 ms.
func DefaultConfig() Config {
	return Config{
		SampleRate:  16000,
		Resampler:   ResamplerCubic,
		WindowSize:  400,
		HopSize:     160,
		NumMels:     26,
		LowFreq:     20,
		PreEmphasis: 0.97,
		NumCeps:     13,
		DeltaWindow: 2,
		PowerFloor:  1e-10,
	}
}

// LoadConfig reads a YAML configuration from r. Keys that are not present
// keep their DefaultConfig value; unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write stores c as YAML in the format LoadConfig reads.
func (c Config) Write(w io.Writer) error {
	if err := yaml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("write feature configuration: %w", err)
	}
	return nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate must be positive", ErrInvalidConfig)
	case c.Resampler != "" && c.Resampler != ResamplerCubic && c.Resampler != ResamplerFilter:
		return fmt.Errorf("%w: unknown resampler %q", ErrInvalidConfig, c.Resampler)
	case c.WindowSize < 2:
		return fmt.Errorf("%w: window_size must be at least 2", ErrInvalidConfig)
	case c.HopSize <= 0:
		return fmt.Errorf("%w: hop_size must be positive", ErrInvalidConfig)
	case c.FFTSize != 0 && c.FFTSize < c.WindowSize:
		return fmt.Errorf("%w: fft_size %d is smaller than window_size %d", ErrInvalidConfig, c.FFTSize, c.WindowSize)
	case c.NumMels <= 0:
		return fmt.Errorf("%w: num_mels must be positive", ErrInvalidConfig)
	case c.NumCeps < 0 || c.NumCeps > c.NumMels:
		return fmt.Errorf("%w: num_ceps must be between 0 and num_mels", ErrInvalidConfig)
	case c.LowFreq < 0 || c.HighFreq < 0:
		return fmt.Errorf("%w: filterbank frequencies must not be negative", ErrInvalidConfig)
	case c.HighFreq > float64(c.SampleRate)/2:
		return fmt.Errorf("%w: high_freq above Nyquist", ErrInvalidConfig)
	case c.LowFreq >= c.highFreq():
		return fmt.Errorf("%w: low_freq must be below high_freq", ErrInvalidConfig)
	case c.PreEmphasis < 0 || c.PreEmphasis >= 1:
		return fmt.Errorf("%w: pre_emphasis must be in [0,1)", ErrInvalidConfig)
	case c.Deltas < 0 || c.Deltas > 2:
		return fmt.Errorf("%w: deltas must be 0, 1 or 2", ErrInvalidConfig)
	case c.Deltas > 0 && c.DeltaWindow < 1:
		return fmt.Errorf("%w: delta_window must be positive", ErrInvalidConfig)
	case c.PowerFloor <= 0:
		return fmt.Errorf("%w: power_floor must be positive", ErrInvalidConfig)
	}
	return nil
}

// BaseDim is the number of static features per frame.
func (c Config) BaseDim() int {
	if c.NumCeps > 0 {
		return c.NumCeps
	}
	return c.NumMels
}

// Dim is the full vector length including dynamic features.
func (c Config) Dim() int { return c.BaseDim() * (1 + c.Deltas) }

func (c Config) fftSize() int {
	if c.FFTSize > 0 {
		return c.FFTSize
	}
	n := 1
	for n < c.WindowSize {
		n <<= 1
	}
	return n
}

func (c Config) highFreq() float64 {
	if c.HighFreq > 0 {
		return c.HighFreq
	}
	return float64(c.SampleRate) / 2
}
