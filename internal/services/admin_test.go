package services

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

func TestSetPlatformFee(t *testing.T) {
	services, m := newTestServices()
	m.db.On("UpdateFeeBps", mock.Anything, uint64(100)).Return(nil)

	err := services.SetPlatformFee(context.Background(), testOwner, 100)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
}

func TestSetPlatformFeeAtCap(t *testing.T) {
	services, m := newTestServices()
	m.db.On("UpdateFeeBps", mock.Anything, types.MaxFeeBasisPoints).Return(nil)

	err := services.SetPlatformFee(context.Background(), testOwner, types.MaxFeeBasisPoints)
	require.Nil(t, err)
}

func TestSetPlatformFeeAboveCap(t *testing.T) {
	services, m := newTestServices()

	err := services.SetPlatformFee(context.Background(), testOwner, types.MaxFeeBasisPoints+1)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidFee, err.ErrorCode)
	m.db.AssertNotCalled(t, "UpdateFeeBps", mock.Anything, mock.Anything)
}

func TestSetPlatformFeeNotOwner(t *testing.T) {
	services, m := newTestServices()

	err := services.SetPlatformFee(context.Background(), testCreator, 100)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.Unauthorized, err.ErrorCode)
	m.db.AssertNotCalled(t, "UpdateFeeBps", mock.Anything, mock.Anything)
}

func TestSetPlatformFeeOwnerCaseInsensitive(t *testing.T) {
	services, m := newTestServices()
	m.db.On("UpdateFeeBps", mock.Anything, uint64(100)).Return(nil)

	err := services.SetPlatformFee(context.Background(), "0x"+strings.ToUpper(testOwner[2:]), 100)
	require.Nil(t, err)
}

func TestSetFeeCollector(t *testing.T) {
	services, m := newTestServices()
	m.db.On("UpdateFeeCollector", mock.Anything, testCollector).Return(nil)

	err := services.SetFeeCollector(context.Background(), testOwner, testCollector)
	require.Nil(t, err)
	m.db.AssertExpectations(t)
}

func TestSetFeeCollectorZeroAddress(t *testing.T) {
	services, m := newTestServices()

	err := services.SetFeeCollector(context.Background(), testOwner, utils.ZeroAddress)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.InvalidRecipient, err.ErrorCode)
	m.db.AssertNotCalled(t, "UpdateFeeCollector", mock.Anything, mock.Anything)
}

func TestSetFeeCollectorNotOwner(t *testing.T) {
	services, _ := newTestServices()

	err := services.SetFeeCollector(context.Background(), testCreator, testCollector)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusForbidden, err.StatusCode)
	assert.Equal(t, types.Unauthorized, err.ErrorCode)
}
