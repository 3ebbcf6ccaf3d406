package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/clients/oracle"
	"github.com/remitflow/escrow-api-service/internal/types"
)

// ReferencePricePublic is the API representation of the informational
// exchange rate. The price is an 8-decimal fixed-point value and is never an
// input to fee or payout arithmetic.
type ReferencePricePublic struct {
	Price    uint64 `json:"price"`
	Decimals int    `json:"decimals"`
	Source   string `json:"source"`
}

// GetReferencePrice returns the oracle rate when a price feed is configured
// and reachable, and the fixed 1.0 baseline otherwise.
func (s *Services) GetReferencePrice(ctx context.Context) (*ReferencePricePublic, *types.Error) {
	if s.Oracle == nil {
		return &ReferencePricePublic{
			Price:    oracle.DefaultPrice,
			Decimals: 8,
			Source:   "default",
		}, nil
	}

	price, err := s.Oracle.GetLatestPrice(ctx)
	if err != nil {
		// The price is advisory only, a feed outage degrades to the baseline.
		log.Ctx(ctx).Warn().Err(err).Msg("Price feed unavailable, falling back to the default rate")
		return &ReferencePricePublic{
			Price:    oracle.DefaultPrice,
			Decimals: 8,
			Source:   "default",
		}, nil
	}

	return &ReferencePricePublic{
		Price:    price,
		Decimals: 8,
		Source:   "oracle",
	}, nil
}
