package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/clients/oracle"
	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/tests/mocks"
)

func TestGetReferencePriceDefault(t *testing.T) {
	services, _ := newTestServices()
	services.Oracle = nil

	price, err := services.GetReferencePrice(context.Background())
	require.Nil(t, err)
	assert.Equal(t, oracle.DefaultPrice, price.Price)
	assert.Equal(t, 8, price.Decimals)
	assert.Equal(t, "default", price.Source)
}

func TestGetReferencePriceFromOracle(t *testing.T) {
	services, _ := newTestServices()
	mockOracle := new(mocks.PriceClient)
	mockOracle.On("GetLatestPrice", mock.Anything).Return(uint64(1_2345_0000), nil)
	services.Oracle = mockOracle

	price, err := services.GetReferencePrice(context.Background())
	require.Nil(t, err)
	assert.Equal(t, uint64(1_2345_0000), price.Price)
	assert.Equal(t, "oracle", price.Source)
}

func TestGetReferencePriceOracleOutage(t *testing.T) {
	services, _ := newTestServices()
	mockOracle := new(mocks.PriceClient)
	mockOracle.On("GetLatestPrice", mock.Anything).Return(
		uint64(0), types.NewErrorWithMsg(http.StatusBadGateway, types.InternalServiceError, "feed unavailable"),
	)
	services.Oracle = mockOracle

	// A feed outage degrades to the baseline instead of failing the query.
	price, err := services.GetReferencePrice(context.Background())
	require.Nil(t, err)
	assert.Equal(t, oracle.DefaultPrice, price.Price)
	assert.Equal(t, "default", price.Source)
}
