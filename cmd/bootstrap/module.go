package bootstrap

import (
	"bargain-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	NotifyModule,
	components.PersistenceModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
