package oracle

import (
	"context"
	"net/http"

	baseclient "github.com/remitflow/escrow-api-service/internal/clients/base"
	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/types"
)

// DefaultPrice is the 8-decimal fixed-point rate (1.0) reported when no
// external price feed is configured.
const DefaultPrice = uint64(1_0000_0000)

type OracleClient struct {
	config     *config.OracleConfig
	httpClient *http.Client
}

func NewOracleClient(config *config.OracleConfig) *OracleClient {
	httpClient := &http.Client{}
	return &OracleClient{
		config,
		httpClient,
	}
}

func (c *OracleClient) GetBaseURL() string {
	return c.config.Host
}

func (c *OracleClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

func (c *OracleClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type latestRateResponse struct {
	Price     uint64 `json:"price"`
	UpdatedAt string `json:"updated_at"`
}

func (c *OracleClient) GetLatestPrice(ctx context.Context) (uint64, *types.Error) {
	opts := &baseclient.BaseClientOptions{
		Path: "/v1/rates/latest",
	}

	resp, err := baseclient.SendRequest[struct{}, latestRateResponse](
		ctx, c, http.MethodGet, opts, nil,
	)
	if err != nil {
		return 0, err
	}
	return resp.Price, nil
}
