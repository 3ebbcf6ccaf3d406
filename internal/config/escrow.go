package config

import (
	"fmt"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// EscrowConfig holds the deployment-level escrow parameters: the owner
// identity gating administrative operations and the fee defaults seeded into
// the fee configuration on first startup.
type EscrowConfig struct {
	OwnerAddress     string `mapstructure:"owner-address"`
	DefaultFeeBps    uint64 `mapstructure:"default-fee-bps"`
	MaxPurposeLength int    `mapstructure:"max-purpose-length"`
}

func (cfg *EscrowConfig) Validate() error {
	if !utils.IsValidAddress(cfg.OwnerAddress) {
		return fmt.Errorf("invalid owner address: %s", cfg.OwnerAddress)
	}

	if cfg.DefaultFeeBps > types.MaxFeeBasisPoints {
		return fmt.Errorf("default fee %d exceeds the maximum of %d basis points", cfg.DefaultFeeBps, types.MaxFeeBasisPoints)
	}

	if cfg.MaxPurposeLength <= 0 {
		return fmt.Errorf("max purpose length must be a positive integer")
	}

	return nil
}
