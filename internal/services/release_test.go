package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

func feeConfigDocument(feeBps uint64) *model.FeeConfigDocument {
	return &model.FeeConfigDocument{
		ID:           model.FeeConfigDocumentID,
		FeeBps:       feeBps,
		FeeCollector: testCollector,
	}
}

func TestReleaseFunds(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 10000)

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	m.db.On("GetFeeConfig", mock.Anything).Return(feeConfigDocument(50), nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Released, utils.QualifiedStatesToReleased(),
	).Return(nil)
	// 10000 at 50 bps: fee 50, recipient 9950
	m.transfer.On("Transfer", mock.Anything, testCollector, uint64(50), "remittance-1-fee").Return(nil)
	m.transfer.On("Transfer", mock.Anything, testRecipient, uint64(9950), "remittance-1-release").Return(nil)
	m.emitter.On("EmitFundsReleasedEvent", mock.Anything, client.NewFundsReleasedEvent(
		1, testRecipient, 9950, 50,
	)).Return(nil)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
	m.transfer.AssertExpectations(t)
	m.emitter.AssertExpectations(t)
}

func TestReleaseFundsZeroFee(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 10000)

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	m.db.On("GetFeeConfig", mock.Anything).Return(feeConfigDocument(0), nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Released, utils.QualifiedStatesToReleased(),
	).Return(nil)
	// No fee transfer happens when the computed fee is zero.
	m.transfer.On("Transfer", mock.Anything, testRecipient, uint64(10000), "remittance-1-release").Return(nil)
	m.emitter.On("EmitFundsReleasedEvent", mock.Anything, mock.Anything).Return(nil)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.Nil(t, err)
	m.transfer.AssertNumberOfCalls(t, "Transfer", 1)
}

func TestReleaseFundsOverfunded(t *testing.T) {
	services, m := newTestServices()
	// 12000 pooled against a 10000 target: the fee applies to the full pool.
	remittance := activeRemittance(1, 12000)

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	m.db.On("GetFeeConfig", mock.Anything).Return(feeConfigDocument(50), nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Released, utils.QualifiedStatesToReleased(),
	).Return(nil)
	m.transfer.On("Transfer", mock.Anything, testCollector, uint64(60), "remittance-1-fee").Return(nil)
	m.transfer.On("Transfer", mock.Anything, testRecipient, uint64(11940), "remittance-1-release").Return(nil)
	m.emitter.On("EmitFundsReleasedEvent", mock.Anything, mock.Anything).Return(nil)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.Nil(t, err)
	m.transfer.AssertExpectations(t)
}

func TestReleaseFundsTargetNotMet(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 5000)
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.TargetNotMet, err.ErrorCode)
}

func TestReleaseFundsNotRecipient(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 10000)
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.ReleaseFunds(context.Background(), 1, testCreator)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotRecipient, err.ErrorCode)
}

func TestReleaseFundsAlreadyReleased(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 10000)
	remittance.State = types.Released
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.AlreadyReleased, err.ErrorCode)
}

func TestReleaseFundsTransferFailureAborts(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 10000)
	transferErr := types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "settlement unavailable")

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	m.db.On("GetFeeConfig", mock.Anything).Return(feeConfigDocument(50), nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Released, utils.QualifiedStatesToReleased(),
	).Return(nil)
	m.transfer.On("Transfer", mock.Anything, testCollector, uint64(50), "remittance-1-fee").Return(transferErr)

	err := services.ReleaseFunds(context.Background(), 1, testRecipient)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	// The recipient payout never happens and no event is emitted.
	m.transfer.AssertNumberOfCalls(t, "Transfer", 1)
	m.emitter.AssertNotCalled(t, "EmitFundsReleasedEvent", mock.Anything, mock.Anything)
}
