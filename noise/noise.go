// SPDX-License-Identifier: EPL-2.0

// Package noise adds reproducible Gaussian noise to feature vectors.
package noise

import (
	"math/rand/v2"

	"github.com/dinesh-batta/AaltoASR/feature"
)

// DefaultSeed is used when no seed is configured, so that two runs with the
// same arguments produce the same bytes.
const DefaultSeed uint64 = 1

// streamSalt derives the second PCG word from the seed.
const streamSalt uint64 = 0x9e3779b97f4a7c15

// Source draws standard normal deviates from a seeded PCG stream. A Source
// has a single owner and is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^streamSalt))}
}

// Draw returns the next N(0,1) deviate.
func (s *Source) Draw() float64 {
	return s.rng.NormFloat64()
}

// Perturb adds Draw()*std to every element of v, in index order. Nothing is
// drawn when std <= 0.
func (s *Source) Perturb(v feature.Vec, std float64) {
	if std <= 0 {
		return
	}
	for i := range v {
		v[i] += s.Draw() * std
	}
}
