package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envOverlay mirrors Config with pointer fields so unset variables can be
// told apart from zero values. All variables take the JOBLY_ prefix, e.g.
// JOBLY_BASE_URL, JOBLY_IDLE_TIMEOUT=30m.
type envOverlay struct {
	BaseURL         *string        `envconfig:"BASE_URL"`
	IdleTimeout     *time.Duration `envconfig:"IDLE_TIMEOUT"`
	ProductCacheTTL *time.Duration `envconfig:"PRODUCT_CACHE_TTL"`
	StorePath       *string        `envconfig:"STORE_PATH"`
	LogFormat       *string        `envconfig:"LOG_FORMAT"`
}

func parseEnv(cfg *Config) {
	var env envOverlay
	if err := envconfig.Process("jobly", &env); err != nil {
		panic(err)
	}

	if env.BaseURL != nil {
		cfg.BaseURL = *env.BaseURL
	}
	if env.IdleTimeout != nil {
		cfg.IdleTimeout = *env.IdleTimeout
	}
	if env.ProductCacheTTL != nil {
		cfg.ProductCacheTTL = *env.ProductCacheTTL
	}
	if env.StorePath != nil {
		cfg.StorePath = *env.StorePath
	}
	if env.LogFormat != nil {
		cfg.LogFormat = *env.LogFormat
	}
}
