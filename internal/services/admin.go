package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// requireOwner is the authorization predicate gating administrative
// operations. The owner identity is fixed per deployment.
func (s *Services) requireOwner(caller string) *types.Error {
	if !utils.SameAddress(caller, s.cfg.Escrow.OwnerAddress) {
		return types.NewErrorWithMsg(http.StatusForbidden, types.Unauthorized, "caller is not the owner")
	}
	return nil
}

// SetPlatformFee replaces the platform fee rate. Owner only, capped at
// MaxFeeBasisPoints.
func (s *Services) SetPlatformFee(ctx context.Context, caller string, feeBps uint64) *types.Error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if feeBps > types.MaxFeeBasisPoints {
		return types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidFee,
			fmt.Sprintf("fee cannot exceed %d basis points", types.MaxFeeBasisPoints),
		)
	}

	if err := s.DbClient.UpdateFeeBps(ctx, feeBps); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to update platform fee")
		return types.NewInternalServiceError(err)
	}
	log.Ctx(ctx).Info().Uint64("feeBps", feeBps).Msg("Platform fee updated")
	return nil
}

// SetFeeCollector replaces the fee collector identity. Owner only, null
// identities are rejected.
func (s *Services) SetFeeCollector(ctx context.Context, caller string, feeCollector string) *types.Error {
	if err := s.requireOwner(caller); err != nil {
		return err
	}

	if !utils.IsValidAddress(feeCollector) {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidRecipient, "fee collector is not a valid identity")
	}

	if err := s.DbClient.UpdateFeeCollector(ctx, utils.NormalizeAddress(feeCollector)); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to update fee collector")
		return types.NewInternalServiceError(err)
	}
	log.Ctx(ctx).Info().Str("feeCollector", feeCollector).Msg("Fee collector updated")
	return nil
}
