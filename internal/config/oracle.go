package config

import (
	"errors"
	"net/url"
)

// OracleConfig points at the optional external price feed. When the host is
// empty the informational price query falls back to a fixed 1.0 rate.
type OracleConfig struct {
	Host    string `mapstructure:"host"`
	Timeout int    `mapstructure:"timeout"`
}

// Enabled reports whether an external price feed is configured.
func (cfg *OracleConfig) Enabled() bool {
	return cfg.Host != ""
}

func (cfg *OracleConfig) Validate() error {
	// The oracle is optional, absence is not a configuration error.
	if cfg.Host == "" {
		return nil
	}

	if cfg.Timeout <= 0 {
		return errors.New("oracle timeout cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return errors.New("invalid oracle host")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("oracle host must start with http or https")
	}

	return nil
}
