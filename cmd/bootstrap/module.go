package bootstrap

import (
	"wanderlust-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	DBModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
