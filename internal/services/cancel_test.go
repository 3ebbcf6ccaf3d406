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

func TestCancelRemittance(t *testing.T) {
	services, m := newTestServices()
	second := "0x4444444444444444444444444444444444444444"
	remittance := activeRemittance(1, 10000)
	remittance.Contributors = []string{testContributor, second}
	ledger := []model.ContributionDocument{
		{RemittanceID: 1, Contributor: second, Amount: 4000},
		{RemittanceID: 1, Contributor: testContributor, Amount: 6000},
	}

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Cancelled, utils.QualifiedStatesToCancelled(),
	).Return(nil)
	m.db.On("FindContributionsByRemittance", mock.Anything, uint64(1)).Return(ledger, nil)
	// Refunds follow first-contribution order, not ledger order.
	m.transfer.On("Transfer", mock.Anything, testContributor, uint64(6000), "remittance-1-refund-"+testContributor).Return(nil)
	m.transfer.On("Transfer", mock.Anything, second, uint64(4000), "remittance-1-refund-"+second).Return(nil)
	m.db.On("ZeroContributions", mock.Anything, uint64(1)).Return(nil)
	m.emitter.On("EmitRemittanceCancelledEvent", mock.Anything, client.NewRemittanceCancelledEvent(
		1, testCreator, 10000,
	)).Return(nil)

	err := services.CancelRemittance(context.Background(), 1, testCreator)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
	m.transfer.AssertExpectations(t)
	m.emitter.AssertExpectations(t)
}

func TestCancelRemittanceNoContributions(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 0)
	remittance.Contributors = []string{}

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Cancelled, utils.QualifiedStatesToCancelled(),
	).Return(nil)
	m.db.On("FindContributionsByRemittance", mock.Anything, uint64(1)).Return([]model.ContributionDocument{}, nil)
	m.db.On("ZeroContributions", mock.Anything, uint64(1)).Return(nil)
	m.emitter.On("EmitRemittanceCancelledEvent", mock.Anything, client.NewRemittanceCancelledEvent(
		1, testCreator, 0,
	)).Return(nil)

	err := services.CancelRemittance(context.Background(), 1, testCreator)
	require.Nil(t, err)
	m.transfer.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelRemittanceNotCreator(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 5000)
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.CancelRemittance(context.Background(), 1, testRecipient)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.NotCreator, err.ErrorCode)
}

func TestCancelRemittanceAlreadyCancelled(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 5000)
	remittance.State = types.Cancelled
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.CancelRemittance(context.Background(), 1, testCreator)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.AlreadyCancelled, err.ErrorCode)
}

func TestCancelRemittanceRefundFailureAborts(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 6000)
	ledger := []model.ContributionDocument{
		{RemittanceID: 1, Contributor: testContributor, Amount: 6000},
	}
	transferErr := types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "settlement unavailable")

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	expectTransaction(m.db)
	m.db.On("TransitionRemittanceState",
		mock.Anything, uint64(1), types.Cancelled, utils.QualifiedStatesToCancelled(),
	).Return(nil)
	m.db.On("FindContributionsByRemittance", mock.Anything, uint64(1)).Return(ledger, nil)
	m.transfer.On("Transfer", mock.Anything, testContributor, uint64(6000), "remittance-1-refund-"+testContributor).Return(transferErr)

	err := services.CancelRemittance(context.Background(), 1, testCreator)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	m.db.AssertNotCalled(t, "ZeroContributions", mock.Anything, mock.Anything)
	m.emitter.AssertNotCalled(t, "EmitRemittanceCancelledEvent", mock.Anything, mock.Anything)
}
