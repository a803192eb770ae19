package bootstrap

import (
	"lodgekeeper/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.ExternalModule,
	components.UseCaseModule,
	components.HandlerModule,
)
