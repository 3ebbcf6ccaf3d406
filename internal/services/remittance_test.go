package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/db"
	"github.com/remitflow/escrow-api-service/internal/db/model"
	"github.com/remitflow/escrow-api-service/internal/queue/client"
	"github.com/remitflow/escrow-api-service/internal/types"
)

func TestCreateRemittance(t *testing.T) {
	services, m := newTestServices()
	expectTransaction(m.db)
	m.db.On("NextRemittanceID", mock.Anything).Return(uint64(0), nil)
	m.db.On("SaveRemittance", mock.Anything, mock.MatchedBy(func(d *model.RemittanceDocument) bool {
		return d.ID == 0 &&
			d.Creator == testCreator &&
			d.Recipient == testRecipient &&
			d.TargetAmount == 10000 &&
			d.CurrentAmount == 0 &&
			d.State == types.Active &&
			len(d.Contributors) == 0
	})).Return(nil)
	m.emitter.On("EmitRemittanceCreatedEvent", mock.Anything, mock.Anything).Return(nil)

	id, err := services.CreateRemittance(context.Background(), testCreator, testRecipient, 10000, "school fees")
	require.Nil(t, err)
	assert.Equal(t, uint64(0), id)
	m.db.AssertExpectations(t)
}

func TestCreateRemittanceNormalizesAddresses(t *testing.T) {
	services, m := newTestServices()
	expectTransaction(m.db)
	m.db.On("NextRemittanceID", mock.Anything).Return(uint64(3), nil)
	m.db.On("SaveRemittance", mock.Anything, mock.MatchedBy(func(d *model.RemittanceDocument) bool {
		return d.Creator == testOwner && d.Recipient == testCollector
	})).Return(nil)
	m.emitter.On("EmitRemittanceCreatedEvent", mock.Anything, mock.Anything).Return(nil)

	// Mixed casing must map to the same stored identity.
	_, err := services.CreateRemittance(
		context.Background(),
		"0x"+strings.ToUpper(testOwner[2:]),
		"0x"+strings.ToUpper(testCollector[2:]),
		10000, "school fees",
	)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
}

func TestCreateRemittanceValidation(t *testing.T) {
	services, _ := newTestServices()
	ctx := context.Background()

	_, err := services.CreateRemittance(ctx, testCreator, "not-an-address", 10000, "school fees")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidRecipient, err.ErrorCode)

	_, err = services.CreateRemittance(ctx, testCreator, "0x0000000000000000000000000000000000000000", 10000, "school fees")
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidRecipient, err.ErrorCode)

	_, err = services.CreateRemittance(ctx, testCreator, testRecipient, 0, "school fees")
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidAmount, err.ErrorCode)

	_, err = services.CreateRemittance(ctx, testCreator, testRecipient, 10000, "")
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidPurpose, err.ErrorCode)

	_, err = services.CreateRemittance(ctx, testCreator, testRecipient, 10000, strings.Repeat("x", 257))
	require.NotNil(t, err)
	assert.Equal(t, types.InvalidPurpose, err.ErrorCode)
}

func TestContribute(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, 6000)
	updated := activeRemittance(1, 10000)

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)
	expectTransaction(m.db)
	m.db.On("RecordContribution", mock.Anything, uint64(1), testContributor, uint64(4000)).Return(updated, nil)
	m.emitter.On("EmitContributionMadeEvent", mock.Anything, client.NewContributionMadeEvent(
		1, testContributor, 4000, 10000,
	)).Return(nil)

	err := services.Contribute(context.Background(), 1, testContributor, 4000)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
	m.emitter.AssertExpectations(t)
}

func TestContributeZeroAmount(t *testing.T) {
	services, _ := newTestServices()

	err := services.Contribute(context.Background(), 1, testContributor, 0)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidAmount, err.ErrorCode)
}

func TestContributeRemittanceNotFound(t *testing.T) {
	services, m := newTestServices()
	m.db.On("FindRemittanceByID", mock.Anything, uint64(42)).Return(
		nil, &db.NotFoundError{Key: "42", Message: "remittance not found"},
	)

	err := services.Contribute(context.Background(), 42, testContributor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Equal(t, types.RemittanceNotFound, err.ErrorCode)
}

func TestContributeToTerminalRemittance(t *testing.T) {
	services, m := newTestServices()
	released := activeRemittance(1, 10000)
	released.State = types.Released
	cancelled := activeRemittance(2, 500)
	cancelled.State = types.Cancelled

	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(released, nil)
	m.db.On("FindRemittanceByID", mock.Anything, uint64(2)).Return(cancelled, nil)

	err := services.Contribute(context.Background(), 1, testContributor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.AlreadyReleased, err.ErrorCode)

	err = services.Contribute(context.Background(), 2, testContributor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, types.AlreadyCancelled, err.ErrorCode)
}

func TestContributeOverflow(t *testing.T) {
	services, m := newTestServices()
	remittance := activeRemittance(1, ^uint64(0)-10)
	m.db.On("FindRemittanceByID", mock.Anything, uint64(1)).Return(remittance, nil)

	err := services.Contribute(context.Background(), 1, testContributor, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidAmount, err.ErrorCode)
}
