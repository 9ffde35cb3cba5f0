package components

import (
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccountCommands,
		commands.NewCatalogCommands,
		commands.NewWizardCommands,
		commands.NewBookingRequestCommands,
		commands.NewOwnerBookingsCommands,
		commands.NewGuestBookingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSessionQueries,
		queries.NewCatalogQueries,
		queries.NewWizardQueries,
		queries.NewGuestQueries,
	),
)
