// SPDX-License-Identifier: EPL-2.0

// Package speaker applies per-speaker and per-utterance linear transforms to
// the static features of a generator.
//
// A speaker file is YAML:
//
//	speakers:
//	  default:
//	    scale: [1.0, 1.0, ...]
//	  spk01:
//	    scale: [0.9, 1.1, ...]
//	    bias:  [0.0, -0.2, ...]
//	    utterances:
//	      utt001:
//	        bias: [0.1, 0.0, ...]
//
// Each feature value becomes v*scale+bias. An empty scale or bias leaves
// that part out.
package speaker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"gonum.org/v1/gonum/floats"

	"github.com/dinesh-batta/AaltoASR/feature"
)

// DefaultSpeaker is the entry used for speakers missing from the file.
const DefaultSpeaker = "default"

var (
	// ErrSpeakerFile is returned for a speaker file that cannot be parsed.
	ErrSpeakerFile = errors.New("invalid speaker file")

	// ErrDimension is returned when transform parameters do not match the
	// generator's static feature dimension.
	ErrDimension = errors.New("speaker parameters do not match feature dimension")
)

// Params is a per-dimension linear transform.
type Params struct {
	Scale []float64 `yaml:"scale,omitempty"`
	Bias  []float64 `yaml:"bias,omitempty"`
}

func (p Params) identity() bool { return len(p.Scale) == 0 && len(p.Bias) == 0 }

// over returns p with empty fields taken from base.
func (p Params) over(base Params) Params {
	if len(p.Scale) == 0 {
		p.Scale = base.Scale
	}
	if len(p.Bias) == 0 {
		p.Bias = base.Bias
	}
	return p
}

type Speaker struct {
	Scale      []float64         `yaml:"scale,omitempty"`
	Bias       []float64         `yaml:"bias,omitempty"`
	Utterances map[string]Params `yaml:"utterances,omitempty"`
}

func (s Speaker) params() Params { return Params{Scale: s.Scale, Bias: s.Bias} }

type speakerFile struct {
	Speakers map[string]Speaker `yaml:"speakers"`
}

// Target is the generator a Config adjusts.
type Target interface {
	SetTransform(t feature.Transform)
	BaseDim() int
}

// Config holds the speakers of a speaker file and the current selection.
type Config struct {
	target   Target
	speakers map[string]Speaker

	speaker   string
	utterance string
	current   Speaker
}

func New(target Target) *Config {
	return &Config{target: target, speakers: make(map[string]Speaker)}
}

// ReadSpeakerFile replaces the known speakers with those read from r.
func (c *Config) ReadSpeakerFile(r io.Reader) error {
	var sf speakerFile
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrSpeakerFile, err)
	}
	if sf.Speakers == nil {
		sf.Speakers = make(map[string]Speaker)
	}
	c.speakers = sf.Speakers
	return nil
}

// LoadSpeakerFile reads the speaker file at path.
func (c *Config) LoadSpeakerFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open speaker file: %w", err)
	}
	defer f.Close()

	if err := c.ReadSpeakerFile(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Speakers lists the speaker ids in the file, sorted.
func (c *Config) Speakers() []string {
	ids := make([]string, 0, len(c.speakers))
	for id := range c.speakers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Speaker and Utterance report the current selection.
func (c *Config) Speaker() string   { return c.speaker }
func (c *Config) Utterance() string { return c.utterance }

// SetSpeaker selects id and installs its transform. An unknown id uses the
// default entry, or no transform when the file has none.
func (c *Config) SetSpeaker(id string) error {
	spk, ok := c.speakers[id]
	if !ok {
		spk = c.speakers[DefaultSpeaker]
	}
	if err := c.install(spk.params()); err != nil {
		return fmt.Errorf("speaker %q: %w", id, err)
	}
	c.speaker, c.utterance, c.current = id, "", spk
	return nil
}

// SetUtterance selects an utterance of the current speaker. Parameters the
// utterance does not set, or an unknown utterance, fall back to the
// speaker's.
func (c *Config) SetUtterance(id string) error {
	p := c.current.params()
	if u, ok := c.current.Utterances[id]; ok {
		p = u.over(p)
	}
	if err := c.install(p); err != nil {
		return fmt.Errorf("speaker %q utterance %q: %w", c.speaker, id, err)
	}
	c.utterance = id
	return nil
}

func (c *Config) install(p Params) error {
	if p.identity() {
		c.target.SetTransform(nil)
		return nil
	}

	dim := c.target.BaseDim()
	if n := len(p.Scale); n != 0 && n != dim {
		return fmt.Errorf("%w: scale has %d values, features have %d", ErrDimension, n, dim)
	}
	if n := len(p.Bias); n != 0 && n != dim {
		return fmt.Errorf("%w: bias has %d values, features have %d", ErrDimension, n, dim)
	}
	c.target.SetTransform(linear(p))
	return nil
}

type linear Params

func (l linear) Apply(v feature.Vec) {
	if len(l.Scale) > 0 {
		floats.Mul(v, l.Scale)
	}
	if len(l.Bias) > 0 {
		floats.Add(v, l.Bias)
	}
}

// Overlay selects a speaker and optional utterance when activated.
type Overlay struct {
	Config      *Config
	SpeakerID   string
	UtteranceID string
}

func (o Overlay) Activate() error {
	if o.Config == nil {
		return nil
	}
	if err := o.Config.SetSpeaker(o.SpeakerID); err != nil {
		return err
	}
	if o.UtteranceID == "" {
		return nil
	}
	return o.Config.SetUtterance(o.UtteranceID)
}
