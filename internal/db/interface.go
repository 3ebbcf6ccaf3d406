package db

import (
	"context"

	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/types"
)

type DBClient interface {
	Ping(ctx context.Context) error
	// WithTransaction runs fn inside a session transaction; every db call made
	// with the provided context commits or rolls back as one unit.
	WithTransaction(ctx context.Context, fn func(sessCtx context.Context) error) error
	NextRemittanceID(ctx context.Context) (uint64, error)
	SaveRemittance(ctx context.Context, document *model.RemittanceDocument) error
	FindRemittanceByID(ctx context.Context, id uint64) (*model.RemittanceDocument, error)
	FindRemittancesByCreator(ctx context.Context, creator string) ([]model.RemittanceDocument, error)
	FindRemittancesByRecipient(ctx context.Context, recipient string) ([]model.RemittanceDocument, error)
	CountRemittances(ctx context.Context) (uint64, error)
	TransitionRemittanceState(
		ctx context.Context, id uint64, newState types.RemittanceState, eligiblePreviousStates []types.RemittanceState,
	) error
	RecordContribution(ctx context.Context, id uint64, contributor string, amount uint64) (*model.RemittanceDocument, error)
	FindContribution(ctx context.Context, id uint64, contributor string) (*model.ContributionDocument, error)
	FindContributionsByRemittance(ctx context.Context, id uint64) ([]model.ContributionDocument, error)
	ZeroContributions(ctx context.Context, id uint64) error
	InitFeeConfig(ctx context.Context, feeBps uint64, feeCollector string) error
	GetFeeConfig(ctx context.Context) (*model.FeeConfigDocument, error)
	UpdateFeeBps(ctx context.Context, feeBps uint64) error
	UpdateFeeCollector(ctx context.Context, feeCollector string) error
}
