package bootstrap

import (
	"institut-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	BookingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
