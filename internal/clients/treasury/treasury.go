package treasury

import (
	"context"
	"net/http"

	baseclient "github.com/remitflow/escrow-api-service/internal/clients/base"
	"github.com/remitflow/escrow-api-service/internal/config"
	"github.com/remitflow/escrow-api-service/internal/types"
)

type TreasuryClient struct {
	config     *config.TreasuryConfig
	httpClient *http.Client
}

func NewTreasuryClient(config *config.TreasuryConfig) *TreasuryClient {
	httpClient := &http.Client{}
	return &TreasuryClient{
		config,
		httpClient,
	}
}

// Necessary for the base client to know the base URL
func (c *TreasuryClient) GetBaseURL() string {
	return c.config.Host
}

// Necessary for the base client to know the default request timeout
func (c *TreasuryClient) GetDefaultRequestTimeout() int {
	return c.config.Timeout
}

// Necessary for the base client to know the http client
func (c *TreasuryClient) GetHttpClient() *http.Client {
	return c.httpClient
}

type transferRequest struct {
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	Reference string `json:"reference"`
}

type transferResponse struct {
	TransferID string `json:"transfer_id"`
	Status     string `json:"status"`
}

func (c *TreasuryClient) Transfer(ctx context.Context, to string, amount uint64, reference string) *types.Error {
	opts := &baseclient.BaseClientOptions{
		Path:    "/v1/transfers",
		Headers: map[string]string{"Content-Type": "application/json"},
	}

	input := transferRequest{
		To:        to,
		Amount:    amount,
		Reference: reference,
	}

	_, err := baseclient.SendRequest[transferRequest, transferResponse](
		ctx, c, http.MethodPost, opts, &input,
	)
	return err
}
