package components

import (
	"locadora-api/internal/pkg/clock"
	"locadora-api/internal/pkg/rowid"
	"locadora-api/internal/usecase/commands"
	"locadora-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	rowid.NewGenerator,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewVehicleCommands,
		commands.NewClientCommands,
		commands.NewRentalCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewVehicleQueries,
		queries.NewClientQueries,
		queries.NewRentalQueries,
	),
)
