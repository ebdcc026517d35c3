package components

import (
	"proposal-service/internal/handler"
	"proposal-service/internal/handler/api"
	"proposal-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProposalHandler,
		api.NewClientHandler,
		api.NewCatalogHandler,
		api.NewInvoiceHandler,
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	proposal *api.ProposalHandler,
	client *api.ClientHandler,
	catalog *api.CatalogHandler,
	invoice *api.InvoiceHandler,
	pricing *api.PricingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Proposal: proposal,
		Client:   client,
		Catalog:  catalog,
		Invoice:  invoice,
		Pricing:  pricing,
	}
}
