package bootstrap

import (
	"venue-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RedisModule,
	RemoteModule,
	IdentityModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
