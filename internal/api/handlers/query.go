package handlers

import (
	"net/http"

	"github.com/remitflow/escrow-api-service/internal/types"
)

type ContributionResponse struct {
	RemittanceID uint64 `json:"remittance_id"`
	Contributor  string `json:"contributor"`
	Amount       uint64 `json:"amount"`
}

type TotalRemittancesResponse struct {
	Total uint64 `json:"total"`
}

// GetRemittance @Summary Get a remittance
// @Description Retrieves a remittance by its id
// @Produce json
// @Param id query int true "Remittance id"
// @Success 200 {object} PublicResponse[services.RemittancePublic] "Remittance"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/remittances [get]
func (h *Handler) GetRemittance(request *http.Request) (*Result, *types.Error) {
	id, err := parseRemittanceIDQuery(request, "id")
	if err != nil {
		return nil, err
	}
	remittance, err := h.services.GetRemittance(request.Context(), id)
	if err != nil {
		return nil, err
	}

	return NewResult(remittance), nil
}

// GetRemittancesByCreator @Summary Get remittances by creator
// @Description Retrieves all remittances created by the given address, ordered by id
// @Produce json
// @Param creator query string true "Creator address"
// @Success 200 {object} PublicResponse[[]services.RemittancePublic] "List of remittances"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/remittances/by-creator [get]
func (h *Handler) GetRemittancesByCreator(request *http.Request) (*Result, *types.Error) {
	creator, err := parseAddressQuery(request, "creator")
	if err != nil {
		return nil, err
	}
	remittances, err := h.services.RemittancesByCreator(request.Context(), creator)
	if err != nil {
		return nil, err
	}

	return NewResult(remittances), nil
}

// GetRemittancesByRecipient @Summary Get remittances by recipient
// @Description Retrieves all remittances destined for the given address, ordered by id
// @Produce json
// @Param recipient query string true "Recipient address"
// @Success 200 {object} PublicResponse[[]services.RemittancePublic] "List of remittances"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Router /v1/remittances/by-recipient [get]
func (h *Handler) GetRemittancesByRecipient(request *http.Request) (*Result, *types.Error) {
	recipient, err := parseAddressQuery(request, "recipient")
	if err != nil {
		return nil, err
	}
	remittances, err := h.services.RemittancesByRecipient(request.Context(), recipient)
	if err != nil {
		return nil, err
	}

	return NewResult(remittances), nil
}

// GetContribution @Summary Get a contributor's cumulative contribution
// @Description Retrieves the cumulative amount the given address has contributed to a remittance.
// @Description Returns zero for an address that never contributed to an existing remittance.
// @Produce json
// @Param id query int true "Remittance id"
// @Param contributor query string true "Contributor address"
// @Success 200 {object} PublicResponse[ContributionResponse] "Cumulative contribution"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/remittances/contribution [get]
func (h *Handler) GetContribution(request *http.Request) (*Result, *types.Error) {
	id, err := parseRemittanceIDQuery(request, "id")
	if err != nil {
		return nil, err
	}
	contributor, err := parseAddressQuery(request, "contributor")
	if err != nil {
		return nil, err
	}
	amount, err := h.services.ContributionOf(request.Context(), id, contributor)
	if err != nil {
		return nil, err
	}

	return NewResult(ContributionResponse{
		RemittanceID: id,
		Contributor:  contributor,
		Amount:       amount,
	}), nil
}

// GetContributors @Summary Get remittance contributors
// @Description Retrieves the distinct contributors of a remittance in first-contribution order
// @Produce json
// @Param id query int true "Remittance id"
// @Success 200 {object} PublicResponse[[]string] "List of contributor addresses"
// @Failure 400 {object} types.Error "Error: Bad Request"
// @Failure 404 {object} types.Error "Error: Not Found"
// @Router /v1/remittances/contributors [get]
func (h *Handler) GetContributors(request *http.Request) (*Result, *types.Error) {
	id, err := parseRemittanceIDQuery(request, "id")
	if err != nil {
		return nil, err
	}
	contributors, err := h.services.ContributorsOf(request.Context(), id)
	if err != nil {
		return nil, err
	}

	return NewResult(contributors), nil
}

// GetTotalRemittances @Summary Get the total number of remittances
// @Description Retrieves the number of remittances ever created, including released and cancelled ones
// @Produce json
// @Success 200 {object} PublicResponse[TotalRemittancesResponse] "Total remittances"
// @Router /v1/remittances/count [get]
func (h *Handler) GetTotalRemittances(request *http.Request) (*Result, *types.Error) {
	total, err := h.services.TotalRemittances(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(TotalRemittancesResponse{Total: total}), nil
}

// GetFeeConfig @Summary Get the platform fee configuration
// @Description Retrieves the current fee in basis points, the fee collector and the platform owner
// @Produce json
// @Success 200 {object} PublicResponse[services.FeeConfigPublic] "Fee configuration"
// @Router /v1/fee-config [get]
func (h *Handler) GetFeeConfig(request *http.Request) (*Result, *types.Error) {
	feeConfig, err := h.services.GetFeeConfig(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(feeConfig), nil
}
