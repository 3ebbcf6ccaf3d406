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

// ReleaseFunds pays out a fully funded remittance: the platform fee to the
// fee collector and the remainder to the recipient. Only the recipient may
// trigger it. The terminal state flip happens strictly before the outbound
// transfers and both commit or neither does.
func (s *Services) ReleaseFunds(ctx context.Context, id uint64, caller string) *types.Error {
	unlock := s.guard.Lock(id)
	defer unlock()

	remittance, findErr := s.findActiveRemittance(ctx, id)
	if findErr != nil {
		metrics.RecordEscrowOperation("release", metrics.Error)
		return findErr
	}

	if !utils.SameAddress(caller, remittance.Recipient) {
		metrics.RecordEscrowOperation("release", metrics.Error)
		return types.NewErrorWithMsg(http.StatusForbidden, types.NotRecipient, "only the recipient can release funds")
	}

	if remittance.CurrentAmount < remittance.TargetAmount {
		metrics.RecordEscrowOperation("release", metrics.Error)
		return types.NewErrorWithMsg(http.StatusConflict, types.TargetNotMet, "target amount has not been met")
	}

	feeConfig, err := s.DbClient.GetFeeConfig(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to load fee configuration")
		metrics.RecordEscrowOperation("release", metrics.Error)
		return types.NewInternalServiceError(err)
	}

	// The fee is computed on the full pooled balance, so with overfunding the
	// surplus is paid out too.
	platformFee := types.PlatformFee(remittance.CurrentAmount, feeConfig.FeeBps)
	recipientAmount := remittance.CurrentAmount - platformFee

	txErr := s.DbClient.WithTransaction(ctx, func(sessCtx context.Context) error {
		// State flip first: a re-entrant call observing the session cannot
		// see an active remittance mid-payout, and an aborted transfer rolls
		// the flip back.
		if err := s.DbClient.TransitionRemittanceState(
			sessCtx, id, types.Released, utils.QualifiedStatesToReleased(),
		); err != nil {
			return err
		}
		if platformFee > 0 {
			if transferErr := s.Transfer.Transfer(
				sessCtx, feeConfig.FeeCollector, platformFee, fmt.Sprintf("remittance-%d-fee", id),
			); transferErr != nil {
				return transferErr
			}
		}
		if transferErr := s.Transfer.Transfer(
			sessCtx, remittance.Recipient, recipientAmount, fmt.Sprintf("remittance-%d-release", id),
		); transferErr != nil {
			return transferErr
		}
		return nil
	})
	if txErr != nil {
		log.Ctx(ctx).Error().Err(txErr).Uint64("remittanceId", id).Msg("Failed to release funds")
		metrics.RecordEscrowOperation("release", metrics.Error)
		var typedErr *types.Error
		if errors.As(txErr, &typedErr) {
			return typedErr
		}
		return types.NewInternalServiceError(txErr)
	}

	if err := s.Emitter.EmitFundsReleasedEvent(ctx, client.NewFundsReleasedEvent(
		id, remittance.Recipient, recipientAmount, platformFee,
	)); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to emit funds released event")
	}

	metrics.RecordEscrowOperation("release", metrics.Success)
	return nil
}
