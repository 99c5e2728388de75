package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be given as strings like "30m" or as integer nanoseconds.
type jsonConfig struct {
	BaseURL         string   `json:"base_url"`
	IdleTimeout     duration `json:"idle_timeout"`
	ProductCacheTTL duration `json:"product_cache_ttl"`
	StorePath       string   `json:"store_path"`
	LogFormat       string   `json:"log_format"`
}

// duration wraps time.Duration so JSON can carry "30m" or 1800000000000.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		d.Duration = parsed
	case float64:
		d.Duration = time.Duration(val)
	}
	return nil
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file path means no JSON layer. Unset fields in
// the file leave cfg untouched.
func parseJSON(cfg *Config) {
	path := jsonConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.IdleTimeout.Duration > 0 {
		cfg.IdleTimeout = jc.IdleTimeout.Duration
	}
	if jc.ProductCacheTTL.Duration > 0 {
		cfg.ProductCacheTTL = jc.ProductCacheTTL.Duration
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
