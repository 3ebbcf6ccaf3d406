package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// CancelRemittance abandons an active remittance and refunds every
// contributor exactly their cumulative ledger amount. Only the creator may
// trigger it. If any individual refund fails the whole operation rolls back;
// a partially refunded remittance is not an acceptable terminal state.
func (s *Services) CancelRemittance(ctx context.Context, id uint64, caller string) *types.Error {
	unlock := s.guard.Lock(id)
	defer unlock()

	remittance, findErr := s.findActiveRemittance(ctx, id)
	if findErr != nil {
		metrics.RecordEscrowOperation("cancel", metrics.Error)
		return findErr
	}

	if !utils.SameAddress(caller, remittance.Creator) {
		metrics.RecordEscrowOperation("cancel", metrics.Error)
		return types.NewErrorWithMsg(http.StatusForbidden, types.NotCreator, "only the creator can cancel a remittance")
	}

	var refundedTotal uint64
	txErr := s.DbClient.WithTransaction(ctx, func(sessCtx context.Context) error {
		refundedTotal = 0

		if err := s.DbClient.TransitionRemittanceState(
			sessCtx, id, types.Cancelled, utils.QualifiedStatesToCancelled(),
		); err != nil {
			return err
		}

		ledger, err := s.DbClient.FindContributionsByRemittance(sessCtx, id)
		if err != nil {
			return err
		}
		amounts := make(map[string]uint64, len(ledger))
		for _, entry := range ledger {
			amounts[entry.Contributor] = entry.Amount
		}

		// Refunds follow the contributors list, which preserves the order in
		// which identities first contributed.
		for _, contributor := range remittance.Contributors {
			amount := amounts[contributor]
			if amount == 0 {
				continue
			}
			if transferErr := s.Transfer.Transfer(
				sessCtx, contributor, amount, fmt.Sprintf("remittance-%d-refund-%s", id, contributor),
			); transferErr != nil {
				return transferErr
			}
			refundedTotal += amount
		}

		return s.DbClient.ZeroContributions(sessCtx, id)
	})
	if txErr != nil {
		log.Ctx(ctx).Error().Err(txErr).Uint64("remittanceId", id).Msg("Failed to cancel remittance")
		metrics.RecordEscrowOperation("cancel", metrics.Error)
		var typedErr *types.Error
		if errors.As(txErr, &typedErr) {
			return typedErr
		}
		return types.NewInternalServiceError(txErr)
	}

	if err := s.Emitter.EmitRemittanceCancelledEvent(ctx, client.NewRemittanceCancelledEvent(
		id, remittance.Creator, refundedTotal,
	)); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to emit remittance cancelled event")
	}

	metrics.RecordEscrowOperation("cancel", metrics.Success)
	return nil
}
