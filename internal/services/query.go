package services

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/db"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// FeeConfigPublic is the API representation of the fee configuration.
type FeeConfigPublic struct {
	FeeBps       uint64 `json:"fee_bps"`
	FeeCollector string `json:"fee_collector"`
	Owner        string `json:"owner"`
	MaxFeeBps    uint64 `json:"max_fee_bps"`
}

func (s *Services) GetRemittance(ctx context.Context, id uint64) (*RemittancePublic, *types.Error) {
	remittance, err := s.DbClient.FindRemittanceByID(ctx, id)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.RemittanceNotFound, "remittance not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to find remittance")
		return nil, types.NewInternalServiceError(err)
	}
	public := fromRemittanceDocument(*remittance)
	return &public, nil
}

// RemittancesByCreator returns the remittances created by the given identity
// in creation order.
func (s *Services) RemittancesByCreator(ctx context.Context, creator string) ([]RemittancePublic, *types.Error) {
	documents, err := s.DbClient.FindRemittancesByCreator(ctx, utils.NormalizeAddress(creator))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to find remittances by creator")
		return nil, types.NewInternalServiceError(err)
	}
	remittances := make([]RemittancePublic, 0, len(documents))
	for _, d := range documents {
		remittances = append(remittances, fromRemittanceDocument(d))
	}
	return remittances, nil
}

// RemittancesByRecipient returns the remittances naming the given identity as
// recipient in creation order.
func (s *Services) RemittancesByRecipient(ctx context.Context, recipient string) ([]RemittancePublic, *types.Error) {
	documents, err := s.DbClient.FindRemittancesByRecipient(ctx, utils.NormalizeAddress(recipient))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to find remittances by recipient")
		return nil, types.NewInternalServiceError(err)
	}
	remittances := make([]RemittancePublic, 0, len(documents))
	for _, d := range documents {
		remittances = append(remittances, fromRemittanceDocument(d))
	}
	return remittances, nil
}

// ContributionOf returns the contributor's cumulative ledger amount for a
// remittance. An identity that never contributed has a zero entry.
func (s *Services) ContributionOf(ctx context.Context, id uint64, contributor string) (uint64, *types.Error) {
	if _, err := s.GetRemittance(ctx, id); err != nil {
		return 0, err
	}

	contribution, err := s.DbClient.FindContribution(ctx, id, utils.NormalizeAddress(contributor))
	if err != nil {
		if db.IsNotFoundError(err) {
			return 0, nil
		}
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to find contribution")
		return 0, types.NewInternalServiceError(err)
	}
	return contribution.Amount, nil
}

// ContributorsOf returns the distinct contributor identities of a remittance
// in the order they first contributed.
func (s *Services) ContributorsOf(ctx context.Context, id uint64) ([]string, *types.Error) {
	remittance, err := s.DbClient.FindRemittanceByID(ctx, id)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.RemittanceNotFound, "remittance not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to find remittance")
		return nil, types.NewInternalServiceError(err)
	}
	if remittance.Contributors == nil {
		return []string{}, nil
	}
	return remittance.Contributors, nil
}

// TotalRemittances returns the number of remittances ever created.
func (s *Services) TotalRemittances(ctx context.Context) (uint64, *types.Error) {
	count, err := s.DbClient.CountRemittances(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to count remittances")
		return 0, types.NewInternalServiceError(err)
	}
	return count, nil
}

// GetFeeConfig returns the current fee configuration together with the
// deployment owner and the fee cap.
func (s *Services) GetFeeConfig(ctx context.Context) (*FeeConfigPublic, *types.Error) {
	feeConfig, err := s.DbClient.GetFeeConfig(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to load fee configuration")
		return nil, types.NewInternalServiceError(err)
	}
	return &FeeConfigPublic{
		FeeBps:       feeConfig.FeeBps,
		FeeCollector: feeConfig.FeeCollector,
		Owner:        utils.NormalizeAddress(s.cfg.Escrow.OwnerAddress),
		MaxFeeBps:    types.MaxFeeBasisPoints,
	}, nil
}
