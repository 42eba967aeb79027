// SPDX-License-Identifier: EPL-2.0

package aku

import "errors"

// ErrConfig marks errors caused by invalid configuration or options.
var ErrConfig = errors.New("configuration error")

type configError struct {
	err error
}

func (e *configError) Error() string   { return e.err.Error() }
func (e *configError) Unwrap() []error { return []error{ErrConfig, e.err} }

// ConfigError marks err as a configuration error while keeping its message
// and chain. A nil err stays nil.
func ConfigError(err error) error {
	if err == nil || errors.Is(err, ErrConfig) {
		return err
	}
	return &configError{err: err}
}
