package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remitflow/escrow-api-service/internal/types"
)

func TestParseRemittanceIDQuery(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/v1/remittances?id=42", nil)
	id, err := parseRemittanceIDQuery(request, "id")
	require.Nil(t, err)
	assert.Equal(t, uint64(42), id)

	request = httptest.NewRequest(http.MethodGet, "/v1/remittances", nil)
	_, err = parseRemittanceIDQuery(request, "id")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, types.BadRequest, err.ErrorCode)

	request = httptest.NewRequest(http.MethodGet, "/v1/remittances?id=-1", nil)
	_, err = parseRemittanceIDQuery(request, "id")
	require.NotNil(t, err)

	request = httptest.NewRequest(http.MethodGet, "/v1/remittances?id=abc", nil)
	_, err = parseRemittanceIDQuery(request, "id")
	require.NotNil(t, err)
}

func TestParseAddressQuery(t *testing.T) {
	request := httptest.NewRequest(
		http.MethodGet,
		"/v1/remittances/by-creator?creator=0xAbCdEf1234567890aBcDeF1234567890abcdef12",
		nil,
	)
	address, err := parseAddressQuery(request, "creator")
	require.Nil(t, err)
	// normalized to lower case
	assert.Equal(t, "0xabcdef1234567890abcdef1234567890abcdef12", address)

	request = httptest.NewRequest(http.MethodGet, "/v1/remittances/by-creator", nil)
	_, err = parseAddressQuery(request, "creator")
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	request = httptest.NewRequest(http.MethodGet, "/v1/remittances/by-creator?creator=invalid", nil)
	_, err = parseAddressQuery(request, "creator")
	require.NotNil(t, err)
}

func TestParseCreateRemittanceRequestPayload(t *testing.T) {
	body := `{"caller":"0x1111111111111111111111111111111111111111","recipient":"0x2222222222222222222222222222222222222222","target_amount":10000,"purpose":"school fees"}`
	request := httptest.NewRequest(http.MethodPost, "/v1/remittances", strings.NewReader(body))

	payload, err := parseCreateRemittanceRequestPayload(request)
	require.Nil(t, err)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", payload.Caller)
	assert.Equal(t, uint64(10000), payload.TargetAmount)
	assert.Equal(t, "school fees", payload.Purpose)
}

func TestParseCreateRemittanceRequestPayloadInvalid(t *testing.T) {
	request := httptest.NewRequest(http.MethodPost, "/v1/remittances", strings.NewReader("not json"))
	_, err := parseCreateRemittanceRequestPayload(request)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)

	body := `{"caller":"bogus","recipient":"0x2222222222222222222222222222222222222222","target_amount":10000,"purpose":"p"}`
	request = httptest.NewRequest(http.MethodPost, "/v1/remittances", strings.NewReader(body))
	_, err = parseCreateRemittanceRequestPayload(request)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestParseRemittanceActionRequestPayload(t *testing.T) {
	body := `{"caller":"0x2222222222222222222222222222222222222222","remittance_id":7}`
	request := httptest.NewRequest(http.MethodPost, "/v1/remittances/release", strings.NewReader(body))

	payload, err := parseRemittanceActionRequestPayload(request)
	require.Nil(t, err)
	assert.Equal(t, uint64(7), payload.RemittanceID)

	body = `{"caller":"0x0000000000000000000000000000000000000000","remittance_id":7}`
	request = httptest.NewRequest(http.MethodPost, "/v1/remittances/release", strings.NewReader(body))
	_, err = parseRemittanceActionRequestPayload(request)
	require.NotNil(t, err)
}
