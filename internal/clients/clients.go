package clients

import (
	"github.com/remitflow/escrow-api-service/internal/clients/oracle"
	"github.com/remitflow/escrow-api-service/internal/clients/treasury"
	"github.com/remitflow/escrow-api-service/internal/config"
)

type Clients struct {
	Treasury treasury.TransferClient
	Oracle   oracle.PriceClient
}

func New(cfg *config.Config) *Clients {
	treasuryClient := treasury.NewTreasuryClient(&cfg.Treasury)

	clients := &Clients{
		Treasury: treasuryClient,
	}

	// The price feed is optional; the reference price query falls back to a
	// fixed rate when it is absent.
	if cfg.Oracle.Enabled() {
		clients.Oracle = oracle.NewOracleClient(&cfg.Oracle)
	}

	return clients
}
