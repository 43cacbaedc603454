package bootstrap

import (
	"locadora-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	AWSModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
