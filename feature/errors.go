// SPDX-License-Identifier: EPL-2.0

package feature

import "errors"

var (
	// ErrInvalidConfig is returned for a feature configuration that cannot be used.
	ErrInvalidConfig = errors.New("invalid feature configuration")

	// ErrNotOpen is returned when frames are requested before audio is opened.
	ErrNotOpen = errors.New("feature generator has no audio")
)
