// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	aku "github.com/dinesh-batta/AaltoASR"
)

// Environment variables that provide defaults for flags.
const (
	EnvConfig   = "FEACAT_CONFIG"
	EnvLogLevel = "FEACAT_LOG_LEVEL"
	EnvSeed     = "FEACAT_SEED"
)

// Loader builds default Options from the environment. Tests can override
// Lookup to inject deterministic maps.
type Loader struct {
	Lookup func(string) (string, bool)
}

func (l Loader) Load() (Options, error) {
	if l.Lookup == nil {
		l.Lookup = os.LookupEnv
	}

	opts := Defaults()
	overrideString(l.Lookup, EnvConfig, &opts.FeatureConfig)
	overrideString(l.Lookup, EnvLogLevel, &opts.LogLevel)
	if err := overrideUint(l.Lookup, EnvSeed, &opts.Seed); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func overrideString(lookup func(string) (string, bool), key string, target *string) {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		*target = strings.TrimSpace(value)
	}
}

func overrideUint(lookup func(string) (string, bool), key string, target *uint64) error {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		parsed, err := strconv.ParseUint(strings.TrimSpace(value), 0, 64)
		if err != nil {
			return aku.ConfigError(fmt.Errorf("config: invalid value for %s: %w", key, err))
		}
		*target = parsed
	}
	return nil
}
