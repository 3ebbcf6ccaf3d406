package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

type CreateRemittanceRequestPayload struct {
	Caller       string `json:"caller"`
	Recipient    string `json:"recipient"`
	TargetAmount uint64 `json:"target_amount"`
	Purpose      string `json:"purpose"`
}

type CreateRemittanceResponse struct {
	RemittanceID uint64 `json:"remittance_id"`
}

func parseCreateRemittanceRequestPayload(request *http.Request) (*CreateRemittanceRequestPayload, *types.Error) {
	payload := &CreateRemittanceRequestPayload{}
	err := json.NewDecoder(request.Body).Decode(payload)
	if err != nil {
		return nil, types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, "invalid request payload")
	}
	// Validate the payload fields
	if !utils.IsValidAddress(payload.Caller) {
		return nil, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid caller address",
		)
	}

	return payload, nil
}

// CreateRemittance godoc
// @Summary Create a remittance
// @Description Registers a new pooled-funding remittance for the given recipient and target amount
// @Accept json
// @Produce json
// @Param payload body CreateRemittanceRequestPayload true "Create Remittance Payload"
// @Success 201 {object} PublicResponse[CreateRemittanceResponse] "The id of the created remittance"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/remittances [post]
func (h *Handler) CreateRemittance(request *http.Request) (*Result, *types.Error) {
	payload, err := parseCreateRemittanceRequestPayload(request)
	if err != nil {
		return nil, err
	}
	id, createErr := h.services.CreateRemittance(
		request.Context(), payload.Caller, payload.Recipient,
		payload.TargetAmount, payload.Purpose,
	)
	if createErr != nil {
		return nil, createErr
	}

	res := &PublicResponse[CreateRemittanceResponse]{Data: CreateRemittanceResponse{RemittanceID: id}}
	return &Result{Data: res, Status: http.StatusCreated}, nil
}

type ContributeRequestPayload struct {
	Caller       string `json:"caller"`
	RemittanceID uint64 `json:"remittance_id"`
	Amount       uint64 `json:"amount"`
}

func parseContributeRequestPayload(request *http.Request) (*ContributeRequestPayload, *types.Error) {
	payload := &ContributeRequestPayload{}
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

// Contribute godoc
// @Summary Contribute to a remittance
// @Description Adds the caller's contribution to an active remittance pool
// @Accept json
// @Produce json
// @Param payload body ContributeRequestPayload true "Contribute Payload"
// @Success 200 {object} Result "Contribution recorded"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Failure 409 {object} types.Error "Error: Conflict"
// @Router /v1/remittances/contribute [post]
func (h *Handler) Contribute(request *http.Request) (*Result, *types.Error) {
	payload, err := parseContributeRequestPayload(request)
	if err != nil {
		return nil, err
	}
	contributeErr := h.services.Contribute(
		request.Context(), payload.RemittanceID, payload.Caller, payload.Amount,
	)
	if contributeErr != nil {
		return nil, contributeErr
	}

	return &Result{Status: http.StatusOK}, nil
}

type RemittanceActionRequestPayload struct {
	Caller       string `json:"caller"`
	RemittanceID uint64 `json:"remittance_id"`
}

func parseRemittanceActionRequestPayload(request *http.Request) (*RemittanceActionRequestPayload, *types.Error) {
	payload := &RemittanceActionRequestPayload{}
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

// ReleaseFunds godoc
// @Summary Release remittance funds
// @Description Releases the pooled funds to the recipient once the target amount is met.
// @Description The platform fee is deducted and paid to the fee collector before the payout.
// @Accept json
// @Produce json
// @Param payload body RemittanceActionRequestPayload true "Release Payload"
// @Success 200 {object} Result "Funds released"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Failure 409 {object} types.Error "Error: Conflict"
// @Router /v1/remittances/release [post]
func (h *Handler) ReleaseFunds(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRemittanceActionRequestPayload(request)
	if err != nil {
		return nil, err
	}
	releaseErr := h.services.ReleaseFunds(request.Context(), payload.RemittanceID, payload.Caller)
	if releaseErr != nil {
		return nil, releaseErr
	}

	return &Result{Status: http.StatusOK}, nil
}

// CancelRemittance godoc
// @Summary Cancel a remittance
// @Description Cancels an active remittance and refunds every contributor their cumulative contribution
// @Accept json
// @Produce json
// @Param payload body RemittanceActionRequestPayload true "Cancel Payload"
// @Success 200 {object} Result "Remittance cancelled"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 403 {object} types.Error "Error: Forbidden"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Failure 409 {object} types.Error "Error: Conflict"
// @Router /v1/remittances/cancel [post]
func (h *Handler) CancelRemittance(request *http.Request) (*Result, *types.Error) {
	payload, err := parseRemittanceActionRequestPayload(request)
	if err != nil {
		return nil, err
	}
	cancelErr := h.services.CancelRemittance(request.Context(), payload.RemittanceID, payload.Caller)
	if cancelErr != nil {
		return nil, cancelErr
	}

	return &Result{Status: http.StatusOK}, nil
}
