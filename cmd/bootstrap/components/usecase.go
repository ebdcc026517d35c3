package components

import (
	"proposal-service/internal/pkg/clock"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewClientQueries,
		queries.NewCatalogQueries,
		queries.NewProposalQueries,
		queries.NewInvoiceQueries,
		queries.NewPricingQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewClientCommands,
		commands.NewCatalogCommands,
		commands.NewProposalCommands,
		commands.NewInvoiceCommands,
	),
)
