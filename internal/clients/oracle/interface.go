package oracle

import (
	"context"

	"github.com/remitflow/escrow-api-service/internal/types"
)

// PriceClient exposes the optional external price feed. The rate is an
// 8-decimal fixed-point value and is purely informational: it is never an
// input to fee or payout arithmetic.
type PriceClient interface {
	GetLatestPrice(ctx context.Context) (uint64, *types.Error)
}
