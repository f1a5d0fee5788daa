package config

import (
	"fmt"
	"sync/atomic"
)

var published atomic.Pointer[Config]

// TrySet publishes cfg as the process wide configuration. It returns
// ErrAlreadySet when a configuration is already published and leaves that
// configuration untouched.
func TrySet(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !published.CompareAndSwap(nil, &cfg) {
		return ErrAlreadySet
	}
	return nil
}

// Set is TrySet for startup code: a second call or an invalid configuration
// panics.
func Set(cfg Config) {
	if err := TrySet(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// Get returns the published configuration, publishing Default on first use.
func Get() Config {
	if cfg := published.Load(); cfg != nil {
		return *cfg
	}
	def := Default()
	published.CompareAndSwap(nil, &def)
	return *published.Load()
}

// IsSet reports whether a configuration has been published.
func IsSet() bool {
	return published.Load() != nil
}
