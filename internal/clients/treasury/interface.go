package treasury

import (
	"context"

	"github.com/remitflow/escrow-api-service/internal/types"
)

// TransferClient moves escrowed value to an identity through the settlement
// collaborator. Transfers are synchronous from the escrow's point of view: a
// returned error means no value moved and the caller must abort the
// surrounding operation.
type TransferClient interface {
	// Transfer sends amount (smallest native unit) to the given identity.
	// The reference uniquely identifies the payout so a retried operation
	// cannot pay twice.
	Transfer(ctx context.Context, to string, amount uint64, reference string) *types.Error
}
