package config

import (
	"errors"
	"net/url"
)

// TreasuryConfig points at the settlement collaborator that executes outbound
// value transfers on behalf of the escrow.
type TreasuryConfig struct {
	Host    string `mapstructure:"host"`
	Timeout int    `mapstructure:"timeout"`
}

func (cfg *TreasuryConfig) Validate() error {
	if cfg.Host == "" {
		return errors.New("treasury host cannot be empty")
	}

	if cfg.Timeout <= 0 {
		return errors.New("treasury timeout cannot be smaller or equal to 0")
	}

	parsedURL, err := url.ParseRequestURI(cfg.Host)
	if err != nil {
		return errors.New("invalid treasury host")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return errors.New("treasury host must start with http or https")
	}

	return nil
}
