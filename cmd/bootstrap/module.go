package bootstrap

import (
	"field-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	MQModule,
	JWTModule,
	ObservabilityModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
