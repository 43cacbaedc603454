package components

import (
	"locadora-api/internal/handler"
	"locadora-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewVehicleHandler,
		api.NewClientHandler,
		api.NewRentalHandler,
	),
	fx.Invoke(handler.NewRouter),
)
