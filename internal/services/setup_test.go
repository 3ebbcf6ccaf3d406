package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/observability/metrics"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/tests/mocks"
)

const (
	testOwner       = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testCreator     = "0x1111111111111111111111111111111111111111"
	testRecipient   = "0x2222222222222222222222222222222222222222"
	testContributor = "0x3333333333333333333333333333333333333333"
	testCollector   = "0xcccccccccccccccccccccccccccccccccccccccc"
)

type serviceMocks struct {
	db       *mocks.DBClient
	transfer *mocks.TransferClient
	emitter  *mocks.EventEmitter
}

func newTestServices() (*Services, *serviceMocks) {
	metrics.Init(0)

	m := &serviceMocks{
		db:       new(mocks.DBClient),
		transfer: new(mocks.TransferClient),
		emitter:  new(mocks.EventEmitter),
	}
	cfg := &config.Config{
		Escrow: config.EscrowConfig{
			OwnerAddress:     testOwner,
			DefaultFeeBps:    types.DefaultFeeBasisPoints,
			MaxPurposeLength: 256,
		},
	}
	services := &Services{
		DbClient: m.db,
		Transfer: m.transfer,
		Emitter:  m.emitter,
		cfg:      cfg,
		guard:    newRemittanceGuard(),
	}
	return services, m
}

// expectTransaction makes the mocked WithTransaction run the callback
// directly, so the inner db calls are observable by the test.
func expectTransaction(db *mocks.DBClient) {
	db.On("WithTransaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(sessCtx context.Context) error) error {
			return fn(ctx)
		},
	)
}

func activeRemittance(id uint64, currentAmount uint64) *model.RemittanceDocument {
	return &model.RemittanceDocument{
		ID:            id,
		Creator:       testCreator,
		Recipient:     testRecipient,
		TargetAmount:  10000,
		CurrentAmount: currentAmount,
		Purpose:       "school fees",
		State:         types.Active,
		Contributors:  []string{testContributor},
		CreatedAt:     time.Now().UTC(),
	}
}
