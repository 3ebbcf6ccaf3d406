package handlers

import (
	"net/http"

	"github.com/remitflow/escrow-api-service/internal/types"
)

// GetReferencePrice @Summary Get the reference exchange price
// @Description Retrieves the reference exchange price used for display purposes.
// @Description Falls back to the platform default price when no oracle feed is configured.
// @Produce json
// @Success 200 {object} PublicResponse[services.ReferencePricePublic] "Reference price"
// @Router /v1/price [get]
func (h *Handler) GetReferencePrice(request *http.Request) (*Result, *types.Error) {
	price, err := h.services.GetReferencePrice(request.Context())
	if err != nil {
		return nil, err
	}

	return NewResult(price), nil
}
