package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/remitflow/escrow-api-service/internal/db"
	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

// RemittancePublic is the API representation of a remittance record.
type RemittancePublic struct {
	ID            uint64 `json:"id"`
	Creator       string `json:"creator"`
	Recipient     string `json:"recipient"`
	TargetAmount  uint64 `json:"target_amount"`
	CurrentAmount uint64 `json:"current_amount"`
	Purpose       string `json:"purpose"`
	State         string `json:"state"`
	IsReleased    bool   `json:"is_released"`
	IsCancelled   bool   `json:"is_cancelled"`
	CreatedAt     int64  `json:"created_at"`
}

func fromRemittanceDocument(d model.RemittanceDocument) RemittancePublic {
	return RemittancePublic{
		ID:            d.ID,
		Creator:       d.Creator,
		Recipient:     d.Recipient,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Purpose:       d.Purpose,
		State:         d.State.ToString(),
		IsReleased:    d.State == types.Released,
		IsCancelled:   d.State == types.Cancelled,
		CreatedAt:     d.CreatedAt.Unix(),
	}
}

// CreateRemittance registers a new pooled-funding campaign and returns its id.
func (s *Services) CreateRemittance(
	ctx context.Context, creator, recipient string, targetAmount uint64, purpose string,
) (uint64, *types.Error) {
	if !utils.IsValidAddress(recipient) {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidRecipient, "recipient is not a valid identity")
	}
	if targetAmount == 0 {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "target amount must be positive")
	}
	if purpose == "" {
		return 0, types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidPurpose, "purpose must not be empty")
	}
	if len(purpose) > s.cfg.Escrow.MaxPurposeLength {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.InvalidPurpose,
			fmt.Sprintf("purpose exceeds the maximum length of %d characters", s.cfg.Escrow.MaxPurposeLength),
		)
	}

	creator = utils.NormalizeAddress(creator)
	recipient = utils.NormalizeAddress(recipient)

	var document *model.RemittanceDocument
	// The id allocation and the insert commit together, so an aborted create
	// leaves no gap in the sequence.
	txErr := s.DbClient.WithTransaction(ctx, func(sessCtx context.Context) error {
		id, err := s.DbClient.NextRemittanceID(sessCtx)
		if err != nil {
			return err
		}
		document = &model.RemittanceDocument{
			ID:            id,
			Creator:       creator,
			Recipient:     recipient,
			TargetAmount:  targetAmount,
			CurrentAmount: 0,
			Purpose:       purpose,
			State:         types.Active,
			Contributors:  []string{},
			CreatedAt:     time.Now().UTC(),
		}
		return s.DbClient.SaveRemittance(sessCtx, document)
	})
	if txErr != nil {
		log.Ctx(ctx).Error().Err(txErr).Msg("Failed to save remittance")
		metrics.RecordEscrowOperation("create", metrics.Error)
		return 0, types.NewInternalServiceError(txErr)
	}

	if err := s.Emitter.EmitRemittanceCreatedEvent(ctx, client.NewRemittanceCreatedEvent(
		document.ID, document.Creator, document.Recipient, document.TargetAmount, document.Purpose,
	)); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", document.ID).Msg("Failed to emit remittance created event")
	}

	metrics.RecordEscrowOperation("create", metrics.Success)
	return document.ID, nil
}

// Contribute adds value to a remittance's pool and to the contributor's
// cumulative ledger entry. The contributed value is held in escrow custody
// until release or cancellation.
func (s *Services) Contribute(
	ctx context.Context, id uint64, contributor string, amount uint64,
) *types.Error {
	if amount == 0 {
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "contribution amount must be positive")
	}
	contributor = utils.NormalizeAddress(contributor)

	unlock := s.guard.Lock(id)
	defer unlock()

	remittance, findErr := s.findActiveRemittance(ctx, id)
	if findErr != nil {
		metrics.RecordEscrowOperation("contribute", metrics.Error)
		return findErr
	}

	// The pool is denominated in the smallest native unit; reject additions
	// that would wrap the accumulator.
	if remittance.CurrentAmount+amount < remittance.CurrentAmount {
		metrics.RecordEscrowOperation("contribute", metrics.Error)
		return types.NewErrorWithMsg(http.StatusBadRequest, types.InvalidAmount, "contribution overflows the pool")
	}

	var updated *model.RemittanceDocument
	txErr := s.DbClient.WithTransaction(ctx, func(sessCtx context.Context) error {
		var err error
		updated, err = s.DbClient.RecordContribution(sessCtx, id, contributor, amount)
		return err
	})
	if txErr != nil {
		metrics.RecordEscrowOperation("contribute", metrics.Error)
		if db.IsNotFoundError(txErr) {
			// The state cannot change while the guard is held, so this means
			// the remittance vanished between the read and the write.
			return types.NewErrorWithMsg(http.StatusNotFound, types.RemittanceNotFound, "remittance not found")
		}
		log.Ctx(ctx).Error().Err(txErr).Uint64("remittanceId", id).Msg("Failed to record contribution")
		return types.NewInternalServiceError(txErr)
	}

	if err := s.Emitter.EmitContributionMadeEvent(ctx, client.NewContributionMadeEvent(
		id, contributor, amount, updated.CurrentAmount,
	)); err != nil {
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to emit contribution made event")
	}

	metrics.RecordEscrowOperation("contribute", metrics.Success)
	return nil
}

// findActiveRemittance loads a remittance and rejects terminal records with
// the specific state-machine error.
func (s *Services) findActiveRemittance(ctx context.Context, id uint64) (*model.RemittanceDocument, *types.Error) {
	remittance, err := s.DbClient.FindRemittanceByID(ctx, id)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(http.StatusNotFound, types.RemittanceNotFound, "remittance not found")
		}
		log.Ctx(ctx).Error().Err(err).Uint64("remittanceId", id).Msg("Failed to find remittance")
		return nil, types.NewInternalServiceError(err)
	}

	switch remittance.State {
	case types.Released:
		return nil, types.NewErrorWithMsg(http.StatusConflict, types.AlreadyReleased, "remittance has already been released")
	case types.Cancelled:
		return nil, types.NewErrorWithMsg(http.StatusConflict, types.AlreadyCancelled, "remittance has already been cancelled")
	}
	return remittance, nil
}
