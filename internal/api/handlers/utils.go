package handlers

import (
	"net/http"
	"strconv"

	"github.com/remitflow/escrow-api-service/internal/types"
	"github.com/remitflow/escrow-api-service/internal/utils"
)

func parseRemittanceIDQuery(request *http.Request, queryName string) (uint64, *types.Error) {
	raw := request.URL.Query().Get(queryName)
	if raw == "" {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, queryName+" is required",
		)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+queryName,
		)
	}
	return id, nil
}

func parseAddressQuery(request *http.Request, queryName string) (string, *types.Error) {
	address := request.URL.Query().Get(queryName)
	if address == "" {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, queryName+" is required",
		)
	}
	if !utils.IsValidAddress(address) {
		return "", types.NewErrorWithMsg(
			http.StatusBadRequest, types.BadRequest, "invalid "+queryName,
		)
	}
	return utils.NormalizeAddress(address), nil
}
