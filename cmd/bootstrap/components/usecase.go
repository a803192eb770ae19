package components

import (
	"lodgekeeper/internal/pkg/clock"
	"lodgekeeper/internal/usecase/commands"
	"lodgekeeper/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewRefundCommands,
		commands.NewBlackoutCommands,
		commands.NewDoorCodeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRefundQueries,
		queries.NewDoorCodeQueries,
		queries.NewCalendarQueries,
		queries.NewAvailabilityQueries,
	),
)
