// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; Load layers file and env sources on top.
// - External errors must be wrapped via this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DealSeed seeds the dealer's randomness source for reproducible
	// draws. Zero means seed from the wall clock.
	DealSeed int64 `koanf:"deal_seed"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8080",
		DealSeed: 0,
	}
}
