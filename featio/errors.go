// SPDX-License-Identifier: EPL-2.0

package featio

import "errors"

var (
	// ErrWrite marks a failed or short write to the output sink.
	ErrWrite = errors.New("feature write failed")

	// ErrHeaderWritten is returned by a second WriteHeader, or one that
	// follows the first frame.
	ErrHeaderWritten = errors.New("feature header already written")

	// ErrInvalidDim is returned for a header dimension below one.
	ErrInvalidDim = errors.New("invalid feature dimension")

	// ErrTruncated is returned when a raw stream ends inside a frame.
	ErrTruncated = errors.New("truncated feature frame")
)
