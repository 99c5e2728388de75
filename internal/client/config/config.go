// Package config holds runtime settings for the Jobly CLI and layers them
// from defaults, an optional JSON file, environment variables and
// command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the Jobly CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - IdleTimeout: inactivity window after which the session is expired.
//   - ProductCacheTTL: how long product details may be served from cache.
//   - StorePath: SQLite file backing the persisted session.
//   - LogFormat: "pretty" for terminal output, "json" for machine-readable.
type Config struct {
	BaseURL         string
	IdleTimeout     time.Duration
	ProductCacheTTL time.Duration
	StorePath       string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:5001/api"
	c.IdleTimeout = 30 * time.Minute
	c.ProductCacheTTL = 5 * time.Minute
	c.StorePath = "jobly.db"
	c.LogFormat = "pretty"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
