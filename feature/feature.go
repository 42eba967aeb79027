// SPDX-License-Identifier: EPL-2.0

package feature

// Vec is one frame's feature vector.
type Vec []float64

// Clone returns a copy of v that shares no storage with it.
func (v Vec) Clone() Vec {
	if v == nil {
		return nil
	}
	out := make(Vec, len(v))
	copy(out, v)
	return out
}

// Generator produces feature vectors by frame index.
type Generator interface {
	// Generate computes the vector of frame. The returned Vec belongs to the
	// caller and has Dim() elements.
	Generate(frame int) (Vec, error)
	// EOF reports whether the most recent Generate reached past the end of
	// the input.
	EOF() bool
	// Dim is the length of every generated Vec.
	Dim() int
}

// Transform adjusts static features in place before dynamic features are
// derived from them.
type Transform interface {
	Apply(v Vec)
}

// TransformFunc adapts a function to Transform.
type TransformFunc func(v Vec)

func (f TransformFunc) Apply(v Vec) { f(v) }
