package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

type SetPlatformFeeRequestPayload struct {
	Caller string `json:"caller"`
	FeeBps uint64 `json:"fee_bps"`
}

type SetFeeCollectorRequestPayload struct {
	Caller       string `json:"caller"`
	FeeCollector string `json:"fee_collector"`
}

func parseSetPlatformFeeRequestPayload(request *http.Request) (*SetPlatformFeeRequestPayload, *types.Error) {
	payload := &SetPlatformFeeRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.Caller) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid caller address",
		)
	}

	return payload, nil
}

func parseSetFeeCollectorRequestPayload(request *http.Request) (*SetFeeCollectorRequestPayload, *types.Error) {
	payload := &SetFeeCollectorRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	if !utils.IsValidAddress(payload.Caller) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid caller address",
		)
	}

	return payload, nil
}

// SetPlatformFee godoc
// @Summary Set the platform fee
// @Description Updates the platform fee in basis points. Only the platform owner may call this.
// @Accept json
// @Produce json
// @Param payload body SetPlatformFeeRequestPayload true "Set Fee Payload"
// @Success 200 {object} Result "Fee updated"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Router /v1/admin/fee [post]
func (h *Handler) SetPlatformFee(request *http.Request) (*Result, *types.Error) {
	payload, err := parseSetPlatformFeeRequestPayload(request)
	if err != nil {
		return nil, err
	}
	setErr := h.services.SetPlatformFee(request.Context(), payload.Caller, payload.FeeBps)
	if setErr != nil {
		return nil, setErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// SetFeeCollector godoc
// @Summary Set the fee collector
// @Description Updates the address that receives platform fees. Only the platform owner may call this.
// @Accept json
// @Produce json
// @Param payload body SetFeeCollectorRequestPayload true "Set Fee Collector Payload"
// @Success 200 {object} Result "Fee collector updated"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Router /v1/admin/fee-collector [post]
func (h *Handler) SetFeeCollector(request *http.Request) (*Result, *types.Error) {
	payload, err := parseSetFeeCollectorRequestPayload(request)
	if err != nil {
		return nil, err
	}
	setErr := h.services.SetFeeCollector(request.Context(), payload.Caller, payload.FeeCollector)
	if setErr != nil {
		return nil, setErr
	}

	return &Result{Status: http.StatusOK}, nil
}
