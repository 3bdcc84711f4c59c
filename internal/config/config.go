// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's sentinels.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetURL points at a play-by-play CSV served over HTTP. Takes
	// precedence over DatasetPath when both are set.
	DatasetURL string `koanf:"dataset_url"`

	// DatasetPath points at a play-by-play CSV on local disk.
	DatasetPath string `koanf:"dataset_path"`

	// LoadTimeoutSeconds bounds a single dataset load, fetch included.
	LoadTimeoutSeconds int `koanf:"load_timeout_seconds"`

	// TopScorersLimit caps how many players a top scorers query returns.
	TopScorersLimit int `koanf:"top_scorers_limit"`

	// Conferences overrides the built-in conference membership table
	// when non-empty.
	Conferences map[string][]string `koanf:"conferences"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		DatasetPath:        "ncaa_pbp.csv",
		LoadTimeoutSeconds: 60,
		TopScorersLimit:    5,
	}
}

// Source returns the dataset source to load, URL winning over path.
func (c *Config) Source() string {
	if c.DatasetURL != "" {
		return c.DatasetURL
	}
	return c.DatasetPath
}
