package components

import (
	"locadora-api/internal/infra/repository"
	"locadora-api/internal/usecase/commands"
	"locadora-api/internal/usecase/queries"

	"go.uber.org/fx"
)

// Each repository serves both the write-side command ports and the
// read-side query stores; the one table makes a split pointless.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(commands.ClientRepository)),
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			repository.NewRentalRepository,
			fx.As(new(commands.RentalRepository)),
			fx.As(new(queries.RentalReadStore)),
		),
	),
)
