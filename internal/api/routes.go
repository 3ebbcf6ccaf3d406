package api

import (
	"github.com/go-chi/chi"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/remitflow/escrow-api-service/docs"
)

func (a *Server) SetupRoutes(r *chi.Mux) {
	handlers := a.handlers
	r.Get("/healthcheck", registerHandler(handlers.HealthCheck))

	r.Post("/v1/remittances", registerHandler(handlers.CreateRemittance))
	r.Post("/v1/remittances/contribute", registerHandler(handlers.Contribute))
	r.Post("/v1/remittances/release", registerHandler(handlers.ReleaseFunds))
	r.Post("/v1/remittances/cancel", registerHandler(handlers.CancelRemittance))

	r.Get("/v1/remittances", registerHandler(handlers.GetRemittance))
	r.Get("/v1/remittances/by-creator", registerHandler(handlers.GetRemittancesByCreator))
	r.Get("/v1/remittances/by-recipient", registerHandler(handlers.GetRemittancesByRecipient))
	r.Get("/v1/remittances/contribution", registerHandler(handlers.GetContribution))
	r.Get("/v1/remittances/contributors", registerHandler(handlers.GetContributors))
	r.Get("/v1/remittances/count", registerHandler(handlers.GetTotalRemittances))

	r.Post("/v1/admin/fee", registerHandler(handlers.SetPlatformFee))
	r.Post("/v1/admin/fee-collector", registerHandler(handlers.SetFeeCollector))
	r.Get("/v1/fee-config", registerHandler(handlers.GetFeeConfig))
	r.Get("/v1/price", registerHandler(handlers.GetReferencePrice))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
